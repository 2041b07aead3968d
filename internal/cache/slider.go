// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// slider.go provides a Valkey-backed cache for the rendered slider payload.
// The public site asks for a tenant's active slider on every page view, so
// the serialized active view is cached per tenant and invalidated whenever
// the aggregate is saved.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// sliderKeyPrefix is the Valkey key prefix for cached slider payloads.
	sliderKeyPrefix = "slider:"

	// DefaultSliderTTL is how long a slider payload stays cached.
	DefaultSliderTTL = 5 * time.Minute
)

// SliderCache manages per-tenant slider payload caching in Valkey.
type SliderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSliderCache creates a new slider cache backed by the given Valkey client.
func NewSliderCache(client *redis.Client, ttl time.Duration) *SliderCache {
	if ttl == 0 {
		ttl = DefaultSliderTTL
	}
	return &SliderCache{client: client, ttl: ttl}
}

// TenantKey derives the cache key for a tenant. The global default config
// lives under "global".
func TenantKey(tenantID *uuid.UUID) string {
	if tenantID == nil {
		return "global"
	}
	return tenantID.String()
}

// Get retrieves the cached payload for a tenant. Returns false on miss.
func (sc *SliderCache) Get(ctx context.Context, tenantID *uuid.UUID) ([]byte, bool) {
	key := sliderKeyPrefix + TenantKey(tenantID)
	val, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("slider cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("slider cache hit", "key", key)
	return val, true
}

// Set stores a tenant's slider payload with the configured TTL.
func (sc *SliderCache) Set(ctx context.Context, tenantID *uuid.UUID, payload []byte) {
	key := sliderKeyPrefix + TenantKey(tenantID)
	if err := sc.client.Set(ctx, key, payload, sc.ttl).Err(); err != nil {
		slog.Warn("slider cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a tenant's cached payload. Called after every save so
// readers never see a stale slider.
func (sc *SliderCache) Invalidate(ctx context.Context, tenantID *uuid.UUID) {
	key := sliderKeyPrefix + TenantKey(tenantID)
	if err := sc.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("slider cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("slider cache invalidated", "key", key)
}

// InvalidateAll removes every cached slider payload by scanning for the
// prefix. Used when a deploy changes the payload shape.
func (sc *SliderCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := sc.client.Scan(ctx, cursor, sliderKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("slider cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("slider cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	slog.Debug("slider cache flushed", "deleted", deleted)
}
