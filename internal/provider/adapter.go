// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider queries external evidence sources and normalizes their
// responses into types.Evidence. Each source is one Adapter; Fetch is the
// boundary that turns every adapter failure into an empty Result.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// Sentinel errors wrapped by adapters. They are only logged, never returned
// to the caller of the engine.
var (
	ErrDisabled  = errors.New("provider disabled")
	ErrMalformed = errors.New("malformed provider response")
	ErrStatus    = errors.New("unexpected provider status")
)

// Adapter searches a single evidence source.
type Adapter interface {
	Name() string
	SourceType() types.SourceType

	// Enabled reports whether the adapter has the credentials it needs. A
	// disabled adapter is never called.
	Enabled() bool

	// Timeout bounds one call to Fetch.
	Timeout() time.Duration

	Fetch(ctx context.Context, query string) ([]types.Evidence, error)
}

// Status is the outcome of one adapter call.
type Status string

const (
	StatusOK       Status = "ok"
	StatusDisabled Status = "disabled"
	StatusFailed   Status = "failed"
	StatusTimedOut Status = "timed_out"
)

// Result is what an adapter contributed to one query. Evidence is empty
// unless Status is StatusOK.
type Result struct {
	Name       string
	SourceType types.SourceType
	Status     Status
	Evidence   []types.Evidence
	Err        error
	Duration   time.Duration
}

// Fetch calls a under its own timeout and never fails: disabled adapters
// are skipped, and errors, deadline expiry, and panics yield an empty
// result carrying the cause.
func Fetch(ctx context.Context, a Adapter, query string) (res Result) {
	res = Result{Name: a.Name(), SourceType: a.SourceType()}
	if !a.Enabled() {
		res.Status = StatusDisabled
		res.Err = ErrDisabled
		return res
	}

	if t := a.Timeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Status = StatusFailed
			res.Evidence = nil
			res.Err = fmt.Errorf("provider %s panicked: %v", a.Name(), r)
		}
	}()

	evidence, err := a.Fetch(ctx, query)
	switch {
	case err != nil && errors.Is(err, context.DeadlineExceeded):
		res.Status = StatusTimedOut
		res.Err = err
	case err != nil:
		res.Status = StatusFailed
		res.Err = err
	default:
		res.Status = StatusOK
		res.Evidence = stamp(evidence, a.SourceType())
	}
	return res
}

// stamp copies evidence, filling in a missing source type so every item
// carries one.
func stamp(evidence []types.Evidence, st types.SourceType) []types.Evidence {
	out := make([]types.Evidence, len(evidence))
	copy(out, evidence)
	for i := range out {
		if out[i].SourceType == "" {
			out[i].SourceType = st
		}
	}
	return out
}
