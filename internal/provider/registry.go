// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"time"

	"github.com/pdiddy/verdict-engine/internal/cache"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// Options configures the decorators applied by All.
type Options struct {
	Limiter  *Limiter
	Cache    cache.Cache
	CacheTTL time.Duration
}

// All builds every known adapter in aggregation priority order. Adapters
// without credentials are included and report Enabled() == false.
func All(h HTTP, cfg types.ProvidersConfig, opts Options) []Adapter {
	adapters := []Adapter{
		NewFactCheckTools(h, cfg.FactCheck),
		NewNewsAPIAI(h, cfg.NewsAPIAI),
		NewNewsData(h, cfg.NewsData),
		NewNewsAPI(h, cfg.NewsAPI),
		NewGoogleSearch(h, cfg.GoogleSearch),
		NewBingSearch(h, cfg.Bing),
	}
	rates := []types.ProviderConfig{
		cfg.FactCheck, cfg.NewsAPIAI, cfg.NewsData, cfg.NewsAPI, cfg.GoogleSearch.ProviderConfig, cfg.Bing,
	}

	for i, a := range adapters {
		if opts.Limiter != nil {
			opts.Limiter.SetRate(a.Name(), rates[i].RequestsPerSecond, rates[i].Burst)
			a = WithLimiter(a, opts.Limiter)
		}
		adapters[i] = WithCache(a, opts.Cache, opts.CacheTTL)
	}
	return adapters
}
