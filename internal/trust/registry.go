// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trust classifies evidence URLs by the host they are served from.
// A host is trusted, a fact checker, or unclassified, according to two
// fixed domain lists that are built once and never mutated.
package trust

import (
	"fmt"
	"net/url"
	"strings"
)

// Tier is the trust classification of a URL's host.
type Tier int

const (
	TierUnclassified Tier = iota
	TierTrusted
	TierFactChecker
)

func (t Tier) String() string {
	switch t {
	case TierTrusted:
		return "trusted"
	case TierFactChecker:
		return "fact_checker"
	default:
		return "unclassified"
	}
}

// TrustedDomains are government sources and established news outlets.
var TrustedDomains = []string{
	// Government
	"pib.gov.in", "pressinformationbureau.gov.in", "mha.gov.in", "mea.gov.in", "mohfw.gov.in",
	"eci.gov.in", "rbi.org.in", "isro.gov.in", "india.gov.in", "pmindia.gov.in",
	// Indian news
	"timesofindia.indiatimes.com", "indianexpress.com", "thehindu.com", "hindustantimes.com",
	"ndtv.com", "news18.com", "republicworld.com", "zeenews.india.com", "aajtak.in",
	"financialexpress.com", "businesstoday.in", "economictimes.indiatimes.com",
	// International
	"bbc.com", "reuters.com", "apnews.com", "cnn.com", "bloomberg.com", "wsj.com",
	"aljazeera.com", "theguardian.com", "washingtonpost.com", "nytimes.com",
	// Legal and court reporting
	"barandbench.com", "livelaw.in", "scobserver.in",
}

// FactCheckDomains are independent fact-checking organizations.
var FactCheckDomains = []string{
	"factcheck.org", "snopes.com", "politifact.com", "boomlive.in", "altnews.in",
	"vishvasnews.com", "fullfact.org", "checkyourfact.com", "factchecker.in",
}

// Registry holds the two domain lists. It is safe for concurrent use
// because nothing writes to it after New returns.
type Registry struct {
	trusted      []string
	factCheckers []string
}

// New builds a registry from the default lists plus extra entries. Entries
// are lower-cased and trimmed. A domain listed as both trusted and fact
// checker is rejected so the two predicates stay exclusive.
func New(extraTrusted, extraFactCheckers []string) (*Registry, error) {
	r := &Registry{
		trusted:      normalizeDomains(TrustedDomains, extraTrusted),
		factCheckers: normalizeDomains(FactCheckDomains, extraFactCheckers),
	}

	fc := make(map[string]bool, len(r.factCheckers))
	for _, d := range r.factCheckers {
		fc[d] = true
	}
	for _, d := range r.trusted {
		if fc[d] {
			return nil, fmt.Errorf("domain %q is listed as both trusted and fact checker", d)
		}
	}
	return r, nil
}

// Default returns a registry over the built-in lists only.
func Default() *Registry {
	r, err := New(nil, nil)
	if err != nil {
		// The built-in lists are disjoint.
		panic(err)
	}
	return r
}

func normalizeDomains(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, d := range list {
			d = strings.ToLower(strings.TrimSpace(d))
			if d == "" || seen[d] {
				continue
			}
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// IsTrusted reports whether the URL's host contains a trusted domain.
func (r *Registry) IsTrusted(rawURL string) bool {
	return matchHost(rawURL, r.trusted)
}

// IsFactChecker reports whether the URL's host contains a fact-checking
// domain.
func (r *Registry) IsFactChecker(rawURL string) bool {
	return matchHost(rawURL, r.factCheckers)
}

// Classify returns the tier of the URL's host.
func (r *Registry) Classify(rawURL string) Tier {
	switch {
	case r.IsTrusted(rawURL):
		return TierTrusted
	case r.IsFactChecker(rawURL):
		return TierFactChecker
	default:
		return TierUnclassified
	}
}

// matchHost is plain substring containment against the lower-cased host,
// not a suffix match on label boundaries: "bbc.com.example.net" matches
// "bbc.com".
func matchHost(rawURL string, domains []string) bool {
	h := host(rawURL)
	if h == "" {
		return false
	}
	for _, d := range domains {
		if strings.Contains(h, d) {
			return true
		}
	}
	return false
}

// host returns the lower-cased host of rawURL without port, or "" when the
// URL is empty or cannot be parsed.
func host(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
