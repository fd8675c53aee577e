package provider

import (
	"context"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

var hubnetPaths = map[domain.Network]string{
	domain.NetworkMTN:       "mtn",
	domain.NetworkATPremium: "at",
	domain.NetworkATBigTime: "big-time",
}

// Hubnet volumes are in megabytes
const hubnetMBPerGB = 1000

type hubnetRequest struct {
	Phone     string `json:"phone"`
	Volume    int    `json:"volume"`
	Reference string `json:"reference"`
	Referrer  string `json:"referrer"`
	Webhook   string `json:"webhook,omitempty"`
}

type hubnetResponse struct {
	Status        bool   `json:"status"`
	Reason        string `json:"reason"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

// Hubnet is the client of the Hubnet aggregator
type Hubnet struct {
	t       *transport
	webhook string
}

// NewHubnet creates a Hubnet client
func NewHubnet(cfg Config, logger *zap.Logger) *Hubnet {
	headers := map[string]string{"token": "Bearer " + cfg.APIKey}
	return &Hubnet{
		t:       newTransport(domain.ProviderHubnet, cfg, headers, logger),
		webhook: cfg.WebhookURL,
	}
}

// Name implements domain.ProviderClient
func (c *Hubnet) Name() domain.Provider {
	return domain.ProviderHubnet
}

// Supports implements domain.ProviderClient
func (c *Hubnet) Supports(network domain.Network) bool {
	_, ok := hubnetPaths[network]
	return ok
}

// PlaceOrder implements domain.ProviderClient
func (c *Hubnet) PlaceOrder(ctx context.Context, order domain.ProviderOrder) domain.ProviderResult {
	path, ok := hubnetPaths[order.Network]
	if !ok {
		return domain.Rejected(ReasonGeneric, fmt.Sprintf("network %s is not served by hubnet", order.Network))
	}

	req := hubnetRequest{
		Phone:     order.Phone,
		Volume:    order.Capacity * hubnetMBPerGB,
		Reference: order.Reference,
		Referrer:  order.Phone,
		Webhook:   c.webhook,
	}

	resp, err := c.t.post(ctx, "/live/api/context/business/transaction/"+path+"-new-transaction", req)
	if err != nil {
		return transportFailure(err)
	}
	if !resp.ok() {
		return failure(resp.status, string(resp.body))
	}

	var body hubnetResponse
	if err := resp.decode(&body); err != nil {
		return domain.Transient(fmt.Sprintf("undecodable response: %s", string(resp.body)))
	}
	if !body.Status {
		raw := body.Reason
		if raw == "" {
			raw = body.Message
		}
		return rejected(raw)
	}

	providerRef := body.TransactionID
	if providerRef == "" {
		providerRef = order.Reference
	}

	return domain.Accepted(providerRef)
}
