package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

var geonettechNetworkKeys = map[domain.Network]string{
	domain.NetworkMTN:       "YELLO",
	domain.NetworkATPremium: "AT_PREMIUM",
}

type geonettechOrder struct {
	NetworkKey string `json:"network_key"`
	Recipient  string `json:"recipient"`
	Capacity   int    `json:"capacity"`
	Reference  string `json:"reference"`
}

type geonettechResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	} `json:"data"`
}

type geonettechBulkResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Results []struct {
			Reference string `json:"reference"`
			Status    string `json:"status"`
			OrderID   string `json:"orderId"`
			Message   string `json:"message"`
		} `json:"results"`
	} `json:"data"`
}

// Geonettech is the client of the Geonettech aggregator. It supports bulk
// placement and status lookups.
type Geonettech struct {
	t *transport
}

// NewGeonettech creates a Geonettech client
func NewGeonettech(cfg Config, logger *zap.Logger) *Geonettech {
	headers := map[string]string{"Authorization": "Bearer " + cfg.APIKey}
	return &Geonettech{t: newTransport(domain.ProviderGeonettech, cfg, headers, logger)}
}

// Name implements domain.ProviderClient
func (c *Geonettech) Name() domain.Provider {
	return domain.ProviderGeonettech
}

// Supports implements domain.ProviderClient
func (c *Geonettech) Supports(network domain.Network) bool {
	_, ok := geonettechNetworkKeys[network]
	return ok
}

func (c *Geonettech) toRequest(o domain.ProviderOrder) geonettechOrder {
	return geonettechOrder{
		NetworkKey: geonettechNetworkKeys[o.Network],
		Recipient:  o.Phone,
		Capacity:   o.Capacity,
		Reference:  o.Reference,
	}
}

// PlaceOrder implements domain.ProviderClient
func (c *Geonettech) PlaceOrder(ctx context.Context, order domain.ProviderOrder) domain.ProviderResult {
	if !c.Supports(order.Network) {
		return domain.Rejected(ReasonGeneric, fmt.Sprintf("network %s is not served by geonettech", order.Network))
	}

	resp, err := c.t.post(ctx, "/api/v1/placeOrder", c.toRequest(order))
	if err != nil {
		return transportFailure(err)
	}
	if !resp.ok() {
		return failure(resp.status, string(resp.body))
	}

	var body geonettechResponse
	if err := resp.decode(&body); err != nil {
		return domain.Transient(fmt.Sprintf("undecodable response: %s", string(resp.body)))
	}
	if body.Status != "success" {
		return rejected(body.Message)
	}

	return domain.Accepted(body.Data.OrderID)
}

// PlaceBulk implements domain.BulkPlacer. Orders missing from the reply are
// absent from the result.
func (c *Geonettech) PlaceBulk(ctx context.Context, orders []domain.ProviderOrder) (*domain.BulkResult, error) {
	items := make([]geonettechOrder, 0, len(orders))
	for _, o := range orders {
		items = append(items, c.toRequest(o))
	}

	resp, err := c.t.post(ctx, "/api/v1/placeBulkOrder", map[string]any{"orders": items})
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("provider: geonettech bulk order failed with status %d: %s", resp.status, string(resp.body))
	}

	var body geonettechBulkResponse
	if err := resp.decode(&body); err != nil {
		return nil, fmt.Errorf("provider: failed to decode geonettech bulk response: %w", err)
	}

	result := &domain.BulkResult{Results: make(map[string]domain.ProviderResult, len(body.Data.Results))}
	for _, r := range body.Data.Results {
		if r.Status == "success" {
			result.Results[r.Reference] = domain.Accepted(r.OrderID)
		} else {
			result.Results[r.Reference] = rejected(r.Message)
		}
	}

	return result, nil
}

// CheckStatus implements domain.StatusChecker
func (c *Geonettech) CheckStatus(ctx context.Context, reference string) domain.ProviderResult {
	resp, err := c.t.get(ctx, "/api/v1/orders/"+url.PathEscape(reference))
	if err != nil {
		return transportFailure(err)
	}
	if resp.status == http.StatusNotFound {
		return domain.Rejected(ReasonGeneric, "order unknown to provider")
	}
	if !resp.ok() {
		return failure(resp.status, string(resp.body))
	}

	var body geonettechResponse
	if err := resp.decode(&body); err != nil {
		return domain.Transient(fmt.Sprintf("undecodable response: %s", string(resp.body)))
	}

	return statusResult(body.Data.Status, body.Data.OrderID, body.Message)
}

// statusResult maps a provider order status to a result
func statusResult(status, providerRef, message string) domain.ProviderResult {
	switch status {
	case "completed", "delivered", "successful", "success":
		return domain.Accepted(providerRef)
	case "failed", "cancelled", "refunded":
		return rejected(message)
	default:
		return domain.Transient("provider status " + status)
	}
}
