// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package baseline provides the coarse fake/real text classifier the
// verdict engine consults as a low-priority signal.
package baseline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// Classifier labels text as fake or real with a confidence in [0, 1].
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, text string) (types.Classification, error)
}

// New builds the classifier selected by cfg.
func New(cfg types.ClassifierConfig) (Classifier, error) {
	switch cfg.Backend {
	case "", types.ClassifierNaiveBayes:
		corpus, err := LoadCorpus(cfg.CorpusPath)
		if err != nil {
			return nil, err
		}
		return NewNaiveBayes(corpus)
	case types.ClassifierOpenAI:
		return NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Backend)
	}
}

// Guard wraps a Classifier so that classification never fails. Errors,
// panics, and results with an unknown label or out-of-range confidence all
// become types.FallbackClassification.
type Guard struct {
	inner  Classifier
	logger *log.Logger
}

// NewGuard wraps c. A nil c always yields the fallback. A nil logger
// discards warnings.
func NewGuard(c Classifier, logger *log.Logger) *Guard {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Guard{inner: c, logger: logger}
}

// Classify returns the inner classification or the fallback.
func (g *Guard) Classify(ctx context.Context, text string) (c types.Classification) {
	if g.inner == nil {
		return types.FallbackClassification
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Printf("warning: classifier panicked: %v", r)
			c = types.FallbackClassification
		}
	}()

	c, err := g.inner.Classify(ctx, text)
	if err != nil {
		g.logger.Printf("warning: classifier failed: %v", err)
		return types.FallbackClassification
	}
	if !c.Valid() {
		g.logger.Printf("warning: classifier returned invalid result %+v", c)
		return types.FallbackClassification
	}
	return c
}
