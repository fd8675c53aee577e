// Package cooldown tracks phone numbers that were recently sent to a provider.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cooldown:data:"

// store is the part of the redis client used by RedisGuard
type store interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisGuard keeps a TTL key per number in Redis
type RedisGuard struct {
	rdb    store
	window time.Duration
}

// NewRedisGuard creates a RedisGuard. Numbers stay in cooldown for window after Mark.
func NewRedisGuard(rdb store, window time.Duration) *RedisGuard {
	return &RedisGuard{rdb: rdb, window: window}
}

func key(phone string) string {
	return keyPrefix + phone
}

// Active returns the numbers that are still in cooldown
func (g *RedisGuard) Active(ctx context.Context, phones []string) (map[string]bool, error) {
	active := make(map[string]bool)
	if len(phones) == 0 {
		return active, nil
	}

	keys := make([]string, len(phones))
	for i, p := range phones {
		keys[i] = key(p)
	}

	values, err := g.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("cooldown: failed to read keys: %w", err)
	}

	for i, v := range values {
		if v != nil && i < len(phones) {
			active[phones[i]] = true
		}
	}

	return active, nil
}

// Mark starts the cooldown window for each number
func (g *RedisGuard) Mark(ctx context.Context, phones []string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range phones {
		if err := g.rdb.Set(ctx, key(p), now, g.window).Err(); err != nil {
			return fmt.Errorf("cooldown: failed to mark %s: %w", p, err)
		}
	}
	return nil
}

// HistoryGuard derives cooldowns from order history. Used when Redis is not configured.
type HistoryGuard struct {
	orders domain.OrderRepository
	window time.Duration
	now    func() time.Time
}

// NewHistoryGuard creates a HistoryGuard
func NewHistoryGuard(orders domain.OrderRepository, window time.Duration) *HistoryGuard {
	return &HistoryGuard{orders: orders, window: window, now: time.Now}
}

// Active returns the numbers with a live order created within the window
func (g *HistoryGuard) Active(ctx context.Context, phones []string) (map[string]bool, error) {
	recent, err := g.orders.RecentByPhones(ctx, phones, g.now().Add(-g.window))
	if err != nil {
		return nil, err
	}

	active := make(map[string]bool, len(recent))
	for phone := range recent {
		active[phone] = true
	}

	return active, nil
}

// Mark is a no-op: the orders themselves are the record
func (g *HistoryGuard) Mark(context.Context, []string) error {
	return nil
}
