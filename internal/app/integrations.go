package app

import (
	"context"
	"fmt"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/config"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/cooldown"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/notify"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/provider"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 3 * time.Second

// initCooldownGuard uses Redis when it is configured and reachable,
// otherwise the order history.
func initCooldownGuard(ctx context.Context, cfg *config.Config, orders domain.OrderRepository, logger *zap.Logger) (domain.CooldownGuard, func()) {
	history := cooldown.NewHistoryGuard(orders, cfg.ProviderCooldown)
	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, using order history for provider cooldown")
		return history, func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, using order history for provider cooldown",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		rdb.Close()
		return history, func() {}
	}

	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return cooldown.NewRedisGuard(rdb, cfg.ProviderCooldown), func() { rdb.Close() }
}

// initNotifier publishes to NATS when configured, otherwise events are only logged
func initNotifier(cfg *config.Config, logger *zap.Logger) (domain.Notifier, func(), error) {
	if cfg.NATSURL == "" {
		logger.Info("nats not configured, order events are logged only")
		return notify.NewLogNotifier(logger), func() {}, nil
	}

	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("dataplatform"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", zap.Error(err))
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	logger.Info("connected to nats", zap.String("url", conn.ConnectedUrl()))
	return notify.NewNATSPublisher(conn, logger), func() { conn.Drain() }, nil
}

// initProviders builds the aggregator clients and the routing registry
func initProviders(cfg *config.Config, logger *zap.Logger) (*provider.Registry, error) {
	providerConfig := func(c config.ProviderConfig) provider.Config {
		return provider.Config{
			BaseURL:    c.BaseURL,
			APIKey:     c.APIKey,
			Timeout:    cfg.ProviderTimeout,
			WebhookURL: c.WebhookURL,
		}
	}

	routes, err := provider.ParseRoutes(cfg.ProviderRoutes)
	if err != nil {
		return nil, err
	}

	registry, err := provider.NewRegistry(routes,
		provider.NewGeonettech(providerConfig(cfg.Geonettech), logger),
		provider.NewHubnet(providerConfig(cfg.Hubnet), logger),
		provider.NewTelecel(providerConfig(cfg.Telecel), logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider registry: %w", err)
	}

	return registry, nil
}
