// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Label is the final classification of a claim.
type Label string

const (
	LabelFact           Label = "Fact"
	LabelMisconception  Label = "Misconception"
	LabelNeedsMoreProof Label = "Needs more proof"
)

// Verdict is the terminal output of the verdict engine. It is created once
// per query and never persisted.
type Verdict struct {
	Label  Label  `json:"label" yaml:"label"`
	Reason string `json:"reason" yaml:"reason"`

	// Rule is the 1-based position of the cascade rule that produced the
	// verdict.
	Rule int `json:"rule" yaml:"rule"`
}

// String renders the verdict the way the CLI prints it.
func (v Verdict) String() string {
	return fmt.Sprintf("%s: %s", v.Label, v.Reason)
}

// BaselineLabel is the coarse output of the statistical baseline classifier.
type BaselineLabel string

const (
	BaselineFake BaselineLabel = "fake"
	BaselineReal BaselineLabel = "real"
)

// Classification is a baseline classifier result.
type Classification struct {
	Label      BaselineLabel `json:"label" yaml:"label"`
	Confidence float64       `json:"confidence" yaml:"confidence"`
}

// FallbackClassification is used whenever the classifier fails or returns
// an invalid shape.
var FallbackClassification = Classification{Label: BaselineReal, Confidence: 0.5}

// Valid reports whether c has a known label and a confidence in [0, 1].
func (c Classification) Valid() bool {
	if c.Label != BaselineFake && c.Label != BaselineReal {
		return false
	}
	return c.Confidence >= 0 && c.Confidence <= 1
}
