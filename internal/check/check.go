// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check is the single entry point of the verdict engine: it
// gathers evidence for a claim, classifies the claim with the baseline,
// decides the verdict, and renders the evidence report.
package check

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/verdict-engine/internal/aggregate"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// ErrEmptyClaim is returned for a claim with no non-space characters.
var ErrEmptyClaim = errors.New("claim is empty")

// MaxQueryRunes bounds the query sent to providers.
const MaxQueryRunes = 300

// Aggregator gathers evidence for a query.
type Aggregator interface {
	Aggregate(ctx context.Context, query string) aggregate.Output
}

// Classifier returns the baseline classification and never fails.
type Classifier interface {
	Classify(ctx context.Context, text string) types.Classification
}

// Decider reduces evidence to a verdict.
type Decider interface {
	Decide(text string, evidence []types.Evidence, baseline types.Classification) types.Verdict
}

// Renderer formats an evidence report.
type Renderer interface {
	Render(evidence []types.Evidence) string
}

// Result is everything one evaluation produced. Nothing in it is kept
// after Evaluate returns.
type Result struct {
	ID       string               `json:"id" yaml:"id"`
	Claim    string               `json:"claim" yaml:"claim"`
	Query    string               `json:"query" yaml:"query"`
	Verdict  types.Verdict        `json:"verdict" yaml:"verdict"`
	Evidence []types.Evidence     `json:"evidence" yaml:"evidence"`
	Report   string               `json:"report" yaml:"report"`
	Baseline types.Classification `json:"baseline" yaml:"baseline"`
	Outcomes []aggregate.Outcome  `json:"outcomes" yaml:"outcomes"`
	Elapsed  time.Duration        `json:"elapsed" yaml:"elapsed"`
}

// Checker evaluates claims. It holds only immutable collaborators and is
// safe for concurrent use.
type Checker struct {
	aggregator Aggregator
	classifier Classifier
	decider    Decider
	renderer   Renderer
}

// New wires a checker from its stages.
func New(a Aggregator, c Classifier, d Decider, r Renderer) *Checker {
	return &Checker{aggregator: a, classifier: c, decider: d, renderer: r}
}

// Evaluate checks one claim. Provider and classifier failures only lower
// the confidence of the verdict; the only error is ErrEmptyClaim.
func (c *Checker) Evaluate(ctx context.Context, text string) (Result, error) {
	start := time.Now()

	claim := strings.TrimSpace(text)
	if claim == "" {
		return Result{}, ErrEmptyClaim
	}
	query := NormalizeQuery(claim)

	// The baseline does not depend on the evidence, so it runs alongside
	// the provider fan-out.
	var baseline types.Classification
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		baseline = c.classifier.Classify(ctx, claim)
	}()

	out := c.aggregator.Aggregate(ctx, query)
	wg.Wait()

	return Result{
		ID:       uuid.New().String(),
		Claim:    claim,
		Query:    query,
		Verdict:  c.decider.Decide(claim, out.Evidence, baseline),
		Evidence: out.Evidence,
		Report:   c.renderer.Render(out.Evidence),
		Baseline: baseline,
		Outcomes: out.Outcomes,
		Elapsed:  time.Since(start),
	}, nil
}

// NormalizeQuery collapses whitespace runs, trims, and caps the result at
// MaxQueryRunes.
func NormalizeQuery(text string) string {
	q := strings.Join(strings.Fields(text), " ")
	r := []rune(q)
	if len(r) > MaxQueryRunes {
		q = strings.TrimSpace(string(r[:MaxQueryRunes]))
	}
	return q
}
