package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

type telecelRequest struct {
	RecipientNumber string `json:"recipientNumber"`
	Capacity        int    `json:"capacity"`
	BundleType      string `json:"bundleType"`
	Reference       string `json:"reference"`
}

type telecelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Order struct {
			OrderReference string `json:"orderReference"`
			Status         string `json:"status"`
		} `json:"order"`
	} `json:"data"`
}

// Telecel is the client of the Telecel developer API
type Telecel struct {
	t *transport
}

// NewTelecel creates a Telecel client
func NewTelecel(cfg Config, logger *zap.Logger) *Telecel {
	headers := map[string]string{"X-API-Key": cfg.APIKey}
	return &Telecel{t: newTransport(domain.ProviderTelecel, cfg, headers, logger)}
}

// Name implements domain.ProviderClient
func (c *Telecel) Name() domain.Provider {
	return domain.ProviderTelecel
}

// Supports implements domain.ProviderClient
func (c *Telecel) Supports(network domain.Network) bool {
	return network == domain.NetworkTelecel
}

// PlaceOrder implements domain.ProviderClient
func (c *Telecel) PlaceOrder(ctx context.Context, order domain.ProviderOrder) domain.ProviderResult {
	if !c.Supports(order.Network) {
		return domain.Rejected(ReasonGeneric, fmt.Sprintf("network %s is not served by telecel", order.Network))
	}

	req := telecelRequest{
		RecipientNumber: order.Phone,
		Capacity:        order.Capacity,
		BundleType:      "data",
		Reference:       order.Reference,
	}

	resp, err := c.t.post(ctx, "/api/developer/orders/place", req)
	if err != nil {
		return transportFailure(err)
	}
	if !resp.ok() {
		return failure(resp.status, string(resp.body))
	}

	var body telecelResponse
	if err := resp.decode(&body); err != nil {
		return domain.Transient(fmt.Sprintf("undecodable response: %s", string(resp.body)))
	}
	if !body.Success {
		return rejected(body.Message)
	}

	return domain.Accepted(body.Data.Order.OrderReference)
}

// CheckStatus implements domain.StatusChecker
func (c *Telecel) CheckStatus(ctx context.Context, reference string) domain.ProviderResult {
	resp, err := c.t.get(ctx, "/api/developer/orders/reference/"+url.PathEscape(reference))
	if err != nil {
		return transportFailure(err)
	}
	if resp.status == http.StatusNotFound {
		return domain.Rejected(ReasonGeneric, "order unknown to provider")
	}
	if !resp.ok() {
		return failure(resp.status, string(resp.body))
	}

	var body telecelResponse
	if err := resp.decode(&body); err != nil {
		return domain.Transient(fmt.Sprintf("undecodable response: %s", string(resp.body)))
	}

	return statusResult(body.Data.Order.Status, body.Data.Order.OrderReference, body.Message)
}
