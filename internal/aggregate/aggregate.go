// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate fans a query out to every evidence provider and merges
// the results in fixed priority order.
package aggregate

import (
	"context"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/pdiddy/verdict-engine/internal/provider"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// DefaultBudget bounds one aggregation when no budget is configured.
const DefaultBudget = 15 * time.Second

// Outcome records what one provider contributed to a query.
type Outcome struct {
	Name       string           `json:"name" yaml:"name"`
	SourceType types.SourceType `json:"source_type" yaml:"source_type"`
	Status     provider.Status  `json:"status" yaml:"status"`
	Count      int              `json:"count" yaml:"count"`
	Duration   time.Duration    `json:"duration" yaml:"duration"`
	Error      string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Output is the merged evidence of one query plus per-provider outcomes,
// both in priority order.
type Output struct {
	Evidence []types.Evidence
	Outcomes []Outcome
}

// Aggregator is safe for concurrent use; it holds no per-query state.
type Aggregator struct {
	adapters []provider.Adapter
	budget   time.Duration
	logger   *log.Logger
	verbose  bool
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithBudget sets the overall deadline of one aggregation.
func WithBudget(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.budget = d
		}
	}
}

// WithLogger sets where warnings go. Verbose also logs disabled providers.
func WithLogger(l *log.Logger, verbose bool) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
		a.verbose = verbose
	}
}

// New creates an aggregator over adapters. Adapters are sorted by source
// type priority; adapters with the same source type keep their order.
func New(adapters []provider.Adapter, opts ...Option) *Aggregator {
	sorted := make([]provider.Adapter, len(adapters))
	copy(sorted, adapters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SourceType().Priority() < sorted[j].SourceType().Priority()
	})

	a := &Aggregator{
		adapters: sorted,
		budget:   DefaultBudget,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Adapters returns the adapters in aggregation order.
func (a *Aggregator) Adapters() []provider.Adapter {
	out := make([]provider.Adapter, len(a.adapters))
	copy(out, a.adapters)
	return out
}

// Aggregate queries every adapter concurrently and concatenates their
// evidence in priority order. It never fails: providers that error, are
// disabled, or miss the budget contribute nothing and are reported in
// Outcomes. Duplicate URLs across providers are kept.
func (a *Aggregator) Aggregate(ctx context.Context, query string) Output {
	ctx, cancel := context.WithTimeout(ctx, a.budget)
	defer cancel()

	type indexed struct {
		idx int
		res provider.Result
	}

	results := make([]provider.Result, len(a.adapters))
	done := make([]bool, len(a.adapters))

	ch := make(chan indexed, len(a.adapters))
	var wg sync.WaitGroup
	for i, ad := range a.adapters {
		wg.Add(1)
		go func(i int, ad provider.Adapter) {
			defer wg.Done()
			ch <- indexed{idx: i, res: provider.Fetch(ctx, ad, query)}
		}(i, ad)
	}
	go func() {
		wg.Wait()
		close(ch)
	}()

collect:
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				break collect
			}
			results[r.idx], done[r.idx] = r.res, true
		case <-ctx.Done():
			// Keep whatever already arrived.
			for {
				select {
				case r, ok := <-ch:
					if !ok {
						break collect
					}
					results[r.idx], done[r.idx] = r.res, true
				default:
					break collect
				}
			}
		}
	}

	out := Output{Evidence: []types.Evidence{}}
	for i, ad := range a.adapters {
		res := results[i]
		if !done[i] {
			res = provider.Result{
				Name:       ad.Name(),
				SourceType: ad.SourceType(),
				Status:     provider.StatusTimedOut,
				Err:        ctx.Err(),
				Duration:   a.budget,
			}
		}
		a.log(res)
		out.Evidence = append(out.Evidence, res.Evidence...)
		out.Outcomes = append(out.Outcomes, outcome(res))
	}
	return out
}

func (a *Aggregator) log(res provider.Result) {
	switch res.Status {
	case provider.StatusFailed, provider.StatusTimedOut:
		a.logger.Printf("warning: provider %s failed: %v", res.Name, res.Err)
	case provider.StatusDisabled:
		if a.verbose {
			a.logger.Printf("provider %s disabled", res.Name)
		}
	case provider.StatusOK:
		if a.verbose {
			a.logger.Printf("provider %s returned %d items in %v", res.Name, len(res.Evidence), res.Duration.Round(time.Millisecond))
		}
	}
}

func outcome(res provider.Result) Outcome {
	o := Outcome{
		Name:       res.Name,
		SourceType: res.SourceType,
		Status:     res.Status,
		Count:      len(res.Evidence),
		Duration:   res.Duration,
	}
	if res.Err != nil && res.Status != provider.StatusDisabled {
		o.Error = res.Err.Error()
	}
	return o
}
