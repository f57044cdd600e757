// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pdiddy/verdict-engine/internal/cache"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

type cached struct {
	Adapter
	cache cache.Cache
	ttl   time.Duration
}

// WithCache serves repeated queries from c. Only successful, non-empty
// results are stored; an unreadable entry counts as a miss.
func WithCache(a Adapter, c cache.Cache, ttl time.Duration) Adapter {
	if c == nil {
		return a
	}
	return &cached{Adapter: a, cache: c, ttl: ttl}
}

func (a *cached) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	key := cache.Key(a.Name(), query)
	if data, ok := a.cache.Get(ctx, key); ok {
		var evidence []types.Evidence
		if err := json.Unmarshal(data, &evidence); err == nil {
			return evidence, nil
		}
	}

	evidence, err := a.Adapter.Fetch(ctx, query)
	if err != nil || len(evidence) == 0 {
		return evidence, err
	}

	if data, merr := json.Marshal(evidence); merr == nil {
		// A failed write only costs a future cache miss.
		a.cache.Set(ctx, key, data, a.ttl)
	}
	return evidence, nil
}
