// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/pdiddy/verdict-engine/internal/aggregate"
	"github.com/pdiddy/verdict-engine/internal/baseline"
	"github.com/pdiddy/verdict-engine/internal/cache"
	"github.com/pdiddy/verdict-engine/internal/check"
	"github.com/pdiddy/verdict-engine/internal/provider"
	"github.com/pdiddy/verdict-engine/internal/report"
	"github.com/pdiddy/verdict-engine/internal/trust"
	"github.com/pdiddy/verdict-engine/internal/verdict"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// engine is the wired pipeline plus whatever must be released on exit.
type engine struct {
	checker    *check.Checker
	aggregator *aggregate.Aggregator
	closers    []io.Closer
}

func (e *engine) Close() error {
	var first error
	for _, c := range e.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// buildEngine wires every stage from cfg. Warnings go to logw.
func buildEngine(cfg types.Config, logw io.Writer, verbose bool) (*engine, error) {
	registry, err := trust.New(cfg.Trust.ExtraTrusted, cfg.Trust.ExtraFactCheckers)
	if err != nil {
		return nil, fmt.Errorf("building trust registry: %w", err)
	}

	e := &engine{}
	opts := provider.Options{Limiter: provider.NewLimiter()}
	if cfg.Cache.Enabled {
		c, closer, err := buildCache(cfg.Cache)
		if err != nil {
			return nil, err
		}
		if closer != nil {
			e.closers = append(e.closers, closer)
		}
		opts.Cache = c
		opts.CacheTTL = cfg.Cache.TTL
	}

	logger := log.New(logw, "", 0)
	adapters := provider.All(provider.NewHTTP(cfg.HTTP), cfg.Providers, opts)
	e.aggregator = aggregate.New(adapters,
		aggregate.WithBudget(cfg.Aggregate.Budget),
		aggregate.WithLogger(logger, verbose),
	)

	classifier, err := baseline.New(cfg.Classifier)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("building classifier: %w", err)
	}

	e.checker = check.New(
		e.aggregator,
		baseline.NewGuard(classifier, logger),
		verdict.New(registry),
		report.New(registry),
	)
	return e, nil
}

// buildCache returns the in-memory cache, layered over SQLite when a
// directory is configured.
func buildCache(cfg types.CacheConfig) (cache.Cache, io.Closer, error) {
	mem := cache.NewMemoryCache(cfg.TTL, 2*cfg.TTL)
	if cfg.Dir == "" {
		return mem, nil, nil
	}
	disk, err := cache.NewSQLiteCache(cfg.Dir, cfg.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("opening response cache: %w", err)
	}
	return cache.NewLayered(mem, disk), disk, nil
}
