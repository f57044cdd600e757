// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an evidence set as a grouped, human-readable
// summary. Rendering is a pure function of the evidence.
package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/verdict-engine/internal/trust"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// NoEvidence is the whole report for an empty evidence set.
const NoEvidence = "No evidence found."

const (
	maxFactChecks = 3
	maxNewsItems  = 4
	maxTitleRunes = 80
)

const factCheckHeader = "Official Fact-Checks:"

// newsHeaders are format strings taking the group size.
var newsHeaders = map[types.SourceType]string{
	types.SourceAINews:       "AI-Powered News Analysis (%d sources):",
	types.SourceRealtimeNews: "Real-Time News (%d sources):",
	types.SourceStandardNews: "News Coverage (%d articles):",
	types.SourceWebSearchA:   "Google Web Search (%d articles):",
	types.SourceWebSearchB:   "Bing Web Search (%d articles):",
}

// Formatter renders evidence reports. It only reads the trust registry.
type Formatter struct {
	registry *trust.Registry
}

// New creates a formatter that marks items with registry, or with the
// default registry when nil.
func New(registry *trust.Registry) *Formatter {
	if registry == nil {
		registry = trust.Default()
	}
	return &Formatter{registry: registry}
}

// Render groups evidence by source type in aggregation order and writes one
// section per non-empty group. Source types outside the known order share a
// final "Other Sources" section.
func (f *Formatter) Render(evidence []types.Evidence) string {
	if len(evidence) == 0 {
		return NoEvidence
	}

	groups := types.GroupBySource(evidence)
	var blocks []string
	for _, st := range types.PriorityOrder {
		items := groups[st]
		if len(items) == 0 {
			continue
		}
		if st == types.SourceFactCheck {
			blocks = append(blocks, f.factChecks(items))
			continue
		}
		blocks = append(blocks, f.news(fmt.Sprintf(newsHeaders[st], len(items)), st, items))
	}

	var other []types.Evidence
	for _, e := range evidence {
		if e.SourceType.Priority() == len(types.PriorityOrder) {
			other = append(other, e)
		}
	}
	if len(other) > 0 {
		blocks = append(blocks, f.news(fmt.Sprintf("Other Sources (%d):", len(other)), "", other))
	}

	return strings.Join(blocks, "\n\n")
}

func (f *Formatter) factChecks(items []types.Evidence) string {
	var b strings.Builder
	b.WriteString(factCheckHeader)
	for i, e := range items {
		if i == maxFactChecks {
			break
		}
		publisher := e.Publisher
		if publisher == "" {
			publisher = "Unknown"
		}
		fmt.Fprintf(&b, "\n  • %s: '%s' - %s", publisher, e.Rating, e.URL)
	}
	return b.String()
}

func (f *Formatter) news(header string, st types.SourceType, items []types.Evidence) string {
	var b strings.Builder
	b.WriteString(header)
	for i, e := range items {
		if i == maxNewsItems {
			break
		}
		mark := "?"
		if f.registry.IsTrusted(e.URL) {
			mark = "✓"
		}
		source := e.Source
		if source == "" {
			source = "?"
		}
		fmt.Fprintf(&b, "\n  %s %s: %s", mark, source, title(e.Title))
		if st == types.SourceAINews && e.Sentiment != 0 {
			fmt.Fprintf(&b, " (Sentiment: %.2f)", e.Sentiment)
		}
	}
	return b.String()
}

// title trims t and cuts it to maxTitleRunes, marking a cut with "...".
func title(t string) string {
	t = strings.TrimSpace(t)
	r := []rune(t)
	if len(r) <= maxTitleRunes {
		return t
	}
	return string(r[:maxTitleRunes]) + "..."
}
