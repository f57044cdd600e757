// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"time"
)

// Layered checks a fast cache before a slow one and promotes slow hits.
type Layered struct {
	fast Cache
	slow Cache
}

// NewLayered combines two caches. Writes go to both.
func NewLayered(fast, slow Cache) *Layered {
	return &Layered{fast: fast, slow: slow}
}

func (c *Layered) Get(ctx context.Context, key string) ([]byte, bool) {
	if val, found := c.fast.Get(ctx, key); found {
		return val, true
	}
	if val, found := c.slow.Get(ctx, key); found {
		c.fast.Set(ctx, key, val, 0)
		return val, true
	}
	return nil, false
}

func (c *Layered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.fast.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return c.slow.Set(ctx, key, value, ttl)
}

func (c *Layered) Delete(ctx context.Context, key string) error {
	c.fast.Delete(ctx, key)
	return c.slow.Delete(ctx, key)
}

func (c *Layered) Clear(ctx context.Context) error {
	c.fast.Clear(ctx)
	return c.slow.Clear(ctx)
}
