package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/metrics"
	"go.uber.org/zap"
)

// DefaultProviderTimeout bounds a single provider call
const DefaultProviderTimeout = 45 * time.Second

// Dispatcher applies one timeout policy to every provider call
type Dispatcher struct {
	timeout time.Duration
	logger  *zap.Logger
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Dispatcher{timeout: timeout, logger: logger}
}

// Dispatch places one order. A call cut short by the deadline is never
// reported as rejected: the provider may already have charged us.
func (d *Dispatcher) Dispatch(ctx context.Context, client domain.ProviderClient, order domain.ProviderOrder) domain.ProviderResult {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	res := client.PlaceOrder(callCtx, order)

	if errors.Is(callCtx.Err(), context.DeadlineExceeded) && res.Outcome == domain.OutcomeRejected {
		res = domain.Transient("deadline exceeded: " + res.Detail)
	}

	metrics.ObserveProviderCall(string(client.Name()), string(res.Outcome), time.Since(start))
	d.log(client.Name(), order.Reference, res)

	return res
}

// DispatchBulk places orders through a bulk endpoint
func (d *Dispatcher) DispatchBulk(ctx context.Context, provider domain.Provider, placer domain.BulkPlacer, orders []domain.ProviderOrder) (*domain.BulkResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	res, err := placer.PlaceBulk(callCtx, orders)
	if err == nil && res == nil {
		err = errors.New("empty bulk response")
	}

	outcome := "bulk"
	if err != nil {
		outcome = "bulk_error"
	}
	metrics.ObserveProviderCall(string(provider), outcome, time.Since(start))

	if err != nil {
		d.logger.Warn("bulk dispatch failed",
			zap.String("provider", string(provider)),
			zap.Int("orders", len(orders)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("dispatcher: bulk call to %s failed: %w", provider, err)
	}

	return res, nil
}

func (d *Dispatcher) log(provider domain.Provider, reference string, res domain.ProviderResult) {
	fields := []zap.Field{
		zap.String("provider", string(provider)),
		zap.String("reference", reference),
		zap.String("outcome", string(res.Outcome)),
	}

	switch res.Outcome {
	case domain.OutcomeAccepted:
		d.logger.Info("provider accepted order", append(fields, zap.String("provider_ref", res.ProviderRef))...)
	case domain.OutcomeRejected:
		d.logger.Warn("provider rejected order", append(fields, zap.String("detail", res.Detail))...)
	default:
		d.logger.Warn("provider outcome unknown", append(fields, zap.String("detail", res.Detail))...)
	}
}
