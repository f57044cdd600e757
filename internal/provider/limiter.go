// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// Limiter holds one token bucket per provider name. Buckets are shared by
// every query in the process, so concurrent batch checks respect the
// provider quotas together.
type Limiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
}

// NewLimiter creates an empty limiter. Providers without a configured rate
// are not limited.
func NewLimiter() *Limiter {
	return &Limiter{limiters: make(map[string]*rate.Limiter)}
}

// SetRate configures the bucket of one provider. A non-positive rate
// removes the limit.
func (l *Limiter) SetRate(name string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if requestsPerSecond <= 0 {
		delete(l.limiters, name)
		return
	}
	if burst <= 0 {
		burst = 1
	}
	l.limiters[name] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// Wait blocks until the provider may make a call or ctx is done.
func (l *Limiter) Wait(ctx context.Context, name string) error {
	l.mu.RLock()
	lim, ok := l.limiters[name]
	l.mu.RUnlock()
	if !ok {
		return nil
	}
	return lim.Wait(ctx)
}

type limited struct {
	Adapter
	limiter *Limiter
}

// WithLimiter waits for the provider's token before each call. If ctx
// expires first the call fails without reaching the provider.
func WithLimiter(a Adapter, l *Limiter) Adapter {
	if l == nil {
		return a
	}
	return &limited{Adapter: a, limiter: l}
}

func (a *limited) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	if err := a.limiter.Wait(ctx, a.Name()); err != nil {
		return nil, fmt.Errorf("waiting for rate limit: %w", err)
	}
	return a.Adapter.Fetch(ctx, query)
}
