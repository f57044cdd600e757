// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verdict reduces a claim's evidence and baseline classification to
// one label and a reason, through an ordered cascade of rules in which the
// first match wins.
package verdict

import (
	"fmt"
	"strings"

	"github.com/pdiddy/verdict-engine/internal/trust"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// Thresholds of the cascade.
const (
	minAINews           = 2
	minTrustedAINews    = 1
	minRealtime         = 3
	minTrustedRealtime  = 2
	strongTrusted       = 3
	credibleTrusted     = 2
	minInstitutionalAll = 3
	minSuspicion        = 0.70
	unverifiedTotal     = 5

	maxRatingsInReason = 3
	maxNamesInReason   = 3
)

var (
	truthIndicators   = []string{"true", "correct", "accurate", "verified", "legitimate"}
	falsityIndicators = []string{"false", "fake", "incorrect", "debunked", "misleading", "fabricated"}

	institutionalKeywords = []string{
		"supreme court", "election commission", "government announces", "ministry",
		"rbi", "isro", "parliament", "lok sabha", "rajya sabha", "high court",
	}

	misinformationPhrases = []string{
		"free money", "forward to", "share now", "breaking:", "urgent",
		"shocking", "died within hours", "whatsapp will charge", "click here",
	}
)

// Rule is one step of the cascade. Apply reports whether the rule matched
// and, if so, the label and reason.
type Rule struct {
	Name  string
	Apply func(f *Facts) (types.Label, string, bool)
}

// Facts is the evidence of one query split the way the rules inspect it.
type Facts struct {
	// Text is the lower-cased claim.
	Text     string
	Evidence []types.Evidence
	Baseline types.Classification

	FactChecks []types.Evidence
	AINews     []types.Evidence
	Realtime   []types.Evidence

	// News holds every known news and search item, which excludes fact
	// checks and unknown source types.
	News []types.Evidence

	// Trusted holds the News items served from a trusted host, and
	// FactCheckerHosted those served from a fact-checking host.
	Trusted           []types.Evidence
	FactCheckerHosted []types.Evidence

	registry *trust.Registry
}

func (f *Facts) trusted(items []types.Evidence) []types.Evidence {
	var out []types.Evidence
	for _, e := range items {
		if f.registry.IsTrusted(e.URL) {
			out = append(out, e)
		}
	}
	return out
}

// Engine decides verdicts. It is immutable and safe for concurrent use.
type Engine struct {
	registry *trust.Registry
	rules    []Rule
}

// New creates an engine that classifies hosts with registry, or with the
// default registry when nil.
func New(registry *trust.Registry) *Engine {
	if registry == nil {
		registry = trust.Default()
	}
	return &Engine{registry: registry, rules: DefaultRules()}
}

// DefaultRules returns the cascade in priority order. The last rule always
// matches.
func DefaultRules() []Rule {
	return []Rule{
		{"official_fact_check", officialFactCheck},
		{"ai_news_corroboration", aiNewsCorroboration},
		{"realtime_news_corroboration", realtimeCorroboration},
		{"trusted_source_corroboration", trustedCorroboration},
		{"fact_checker_hosted", factCheckerHosted},
		{"institutional_keyword", institutionalKeyword},
		{"baseline_suspicion", baselineSuspicion},
		{"coverage_fallback", coverageFallback},
	}
}

// Rules returns the rule names in evaluation order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// Decide runs the cascade over the evidence of one claim. It never fails;
// when no rule before the fallback matches the verdict is NeedsMoreProof.
func (e *Engine) Decide(text string, evidence []types.Evidence, baseline types.Classification) types.Verdict {
	f := e.facts(text, evidence, baseline)
	for i, r := range e.rules {
		if label, reason, ok := r.Apply(f); ok {
			return types.Verdict{Label: label, Reason: reason, Rule: i + 1}
		}
	}
	return types.Verdict{Label: types.LabelNeedsMoreProof, Reason: "Insufficient evidence for confident verdict", Rule: len(e.rules)}
}

func (e *Engine) facts(text string, evidence []types.Evidence, baseline types.Classification) *Facts {
	f := &Facts{
		Text:     strings.ToLower(text),
		Evidence: evidence,
		Baseline: baseline,
		registry: e.registry,
	}
	for _, ev := range evidence {
		switch ev.SourceType {
		case types.SourceFactCheck:
			f.FactChecks = append(f.FactChecks, ev)
		case types.SourceAINews:
			f.AINews = append(f.AINews, ev)
		case types.SourceRealtimeNews:
			f.Realtime = append(f.Realtime, ev)
		}
	}

	// News is built in priority order so reasons name sources in the order
	// the report shows them.
	groups := types.GroupBySource(evidence)
	for _, st := range types.PriorityOrder {
		if st.IsNews() {
			f.News = append(f.News, groups[st]...)
		}
	}
	f.Trusted = f.trusted(f.News)
	for _, ev := range f.News {
		if e.registry.IsFactChecker(ev.URL) {
			f.FactCheckerHosted = append(f.FactCheckerHosted, ev)
		}
	}
	return f
}

func officialFactCheck(f *Facts) (types.Label, string, bool) {
	if len(f.FactChecks) == 0 {
		return "", "", false
	}

	var pairs []string
	ratings := make([]string, 0, len(f.FactChecks))
	for i, fc := range f.FactChecks {
		if i < maxRatingsInReason {
			pairs = append(pairs, fc.Publisher+": "+fc.Rating)
		}
		ratings = append(ratings, strings.ToLower(fc.Rating))
	}
	sources := strings.Join(pairs, " | ")
	blob := strings.Join(ratings, " ")

	isTrue := containsAny(blob, truthIndicators)
	isFalse := containsAny(blob, falsityIndicators)
	switch {
	case isTrue && !isFalse:
		return types.LabelFact, "Official fact-checkers confirm this is TRUE. Sources: " + sources, true
	case isFalse && !isTrue:
		return types.LabelMisconception, "Official fact-checkers confirm this is FALSE. Sources: " + sources, true
	default:
		return types.LabelNeedsMoreProof, "Mixed fact-check results. Sources: " + sources, true
	}
}

func aiNewsCorroboration(f *Facts) (types.Label, string, bool) {
	if len(f.AINews) < minAINews {
		return "", "", false
	}
	trusted := f.trusted(f.AINews)
	if len(trusted) < minTrustedAINews {
		return "", "", false
	}
	return types.LabelFact, fmt.Sprintf("Verified by AI-powered news analysis from %d sources including %d trusted outlets%s",
		len(f.AINews), len(trusted), examples(trusted)), true
}

func realtimeCorroboration(f *Facts) (types.Label, string, bool) {
	if len(f.Realtime) < minRealtime {
		return "", "", false
	}
	trusted := f.trusted(f.Realtime)
	if len(trusted) < minTrustedRealtime {
		return "", "", false
	}
	return types.LabelFact, fmt.Sprintf("Confirmed by %d trusted real-time news sources%s",
		len(trusted), examples(trusted)), true
}

func trustedCorroboration(f *Facts) (types.Label, string, bool) {
	n := len(f.Trusted)
	switch {
	case n >= strongTrusted:
		return types.LabelFact, fmt.Sprintf("Reported by %d trusted news sources%s", n, examples(f.Trusted)), true
	case n >= credibleTrusted:
		return types.LabelFact, fmt.Sprintf("Confirmed by %d credible sources%s", n, examples(f.Trusted)), true
	default:
		return "", "", false
	}
}

func factCheckerHosted(f *Facts) (types.Label, string, bool) {
	if len(f.FactCheckerHosted) == 0 {
		return "", "", false
	}
	return types.LabelFact, "Corroborated by fact-checking organizations" + examples(f.FactCheckerHosted), true
}

func institutionalKeyword(f *Facts) (types.Label, string, bool) {
	if !containsAny(f.Text, institutionalKeywords) {
		return "", "", false
	}
	switch {
	case len(f.News) >= minInstitutionalAll:
		return types.LabelFact, fmt.Sprintf("Official government/institutional news with widespread coverage (%d sources)", len(f.News)), true
	case len(f.Trusted) >= 1:
		return types.LabelFact, "Official news confirmed by trusted sources" + examples(f.Trusted), true
	default:
		return "", "", false
	}
}

func baselineSuspicion(f *Facts) (types.Label, string, bool) {
	if f.Baseline.Label != types.BaselineFake || f.Baseline.Confidence < minSuspicion {
		return "", "", false
	}
	if !containsAny(f.Text, misinformationPhrases) {
		return "", "", false
	}
	return types.LabelMisconception, fmt.Sprintf("High suspicion: Contains typical misinformation patterns (AI confidence: %.1f%%)",
		f.Baseline.Confidence*100), true
}

func coverageFallback(f *Facts) (types.Label, string, bool) {
	total := len(f.Evidence)
	switch {
	case total == 0:
		return types.LabelNeedsMoreProof, "No verification sources found online", true
	case len(f.Trusted) == 0 && total >= unverifiedTotal:
		return types.LabelNeedsMoreProof, fmt.Sprintf("Found %d sources but none from verified outlets", total), true
	case len(f.News) >= 1 && len(f.Trusted) == 0:
		return types.LabelNeedsMoreProof, fmt.Sprintf("Limited verification - found %d sources but need trusted confirmation", len(f.News)), true
	default:
		return types.LabelNeedsMoreProof, "Insufficient evidence for confident verdict", true
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// examples formats up to maxNamesInReason distinct source names as
// " (e.g. A, B)", or "" when none of the items is named.
func examples(items []types.Evidence) string {
	seen := map[string]bool{}
	var names []string
	for _, e := range items {
		name := strings.TrimSpace(e.Source)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
		if len(names) == maxNamesInReason {
			break
		}
	}
	if len(names) == 0 {
		return ""
	}
	return " (e.g. " + strings.Join(names, ", ") + ")"
}
