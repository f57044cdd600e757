// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the verdict-engine:
// evidence items returned by providers, the baseline classification, the
// verdict, and the configuration of every stage.
package types

// SourceType identifies which provider produced an evidence item. The set is
// open: adapters for new providers declare new values.
type SourceType string

const (
	SourceFactCheck    SourceType = "fact_check"
	SourceAINews       SourceType = "ai_news"
	SourceRealtimeNews SourceType = "realtime_news"
	SourceStandardNews SourceType = "standard_news"
	SourceWebSearchA   SourceType = "web_search_a"
	SourceWebSearchB   SourceType = "web_search_b"
)

// PriorityOrder is the fixed order in which evidence is concatenated,
// judged, and displayed.
var PriorityOrder = []SourceType{
	SourceFactCheck,
	SourceAINews,
	SourceRealtimeNews,
	SourceStandardNews,
	SourceWebSearchA,
	SourceWebSearchB,
}

// Priority returns the position of s in PriorityOrder. Source types that are
// not part of the fixed order sort after all known ones.
func (s SourceType) Priority() int {
	for i, st := range PriorityOrder {
		if st == s {
			return i
		}
	}
	return len(PriorityOrder)
}

// IsNews reports whether s is one of the known corroborating news or search
// types. Official fact checks and unknown types are not news.
func (s SourceType) IsNews() bool {
	return s != SourceFactCheck && s.Priority() < len(PriorityOrder)
}

// ConfidenceTier is the coarse quality label a provider declares for its
// items. It is informational; the verdict cascade never branches on it.
type ConfidenceTier string

const (
	ConfidenceVeryHigh ConfidenceTier = "very_high"
	ConfidenceHigh     ConfidenceTier = "high"
	ConfidenceMedium   ConfidenceTier = "medium"
)

// Evidence is one normalized record returned by a provider.
type Evidence struct {
	// SourceType is the provider tag. Never empty.
	SourceType SourceType `json:"source_type" yaml:"source_type"`

	// Title is the claim text for fact checks and the headline otherwise.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical link. It may be empty, in which case the item is
	// neither trusted nor hosted by a fact checker.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source is the publisher or display name.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Rating is the textual verdict of a fact check ("False", "Mostly True").
	Rating string `json:"rating,omitempty" yaml:"rating,omitempty"`

	// Publisher is the fact-checking organization.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// PublishedAt is an opaque provider timestamp.
	PublishedAt string `json:"published_at,omitempty" yaml:"published_at,omitempty"`

	// Snippet is a short plain-text excerpt, at most MaxSnippetRunes long.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// Sentiment is a provider-specific score; 0 means absent.
	Sentiment float64 `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`

	// Confidence is the provider-declared quality tier.
	Confidence ConfidenceTier `json:"confidence" yaml:"confidence"`
}

// MaxSnippetRunes bounds Evidence.Snippet.
const MaxSnippetRunes = 200

// GroupBySource splits evidence by source type, preserving input order
// within each group.
func GroupBySource(evidence []Evidence) map[SourceType][]Evidence {
	groups := make(map[SourceType][]Evidence)
	for _, e := range evidence {
		groups[e.SourceType] = append(groups[e.SourceType], e)
	}
	return groups
}
