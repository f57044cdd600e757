// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// strict removes every tag. bluemonday policies are safe for concurrent use
// once built.
var strict = bluemonday.StrictPolicy()

// Sanitize strips HTML markup, decodes entities, and collapses whitespace.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

// Truncate caps s at n runes.
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Snippet sanitizes s and caps it at types.MaxSnippetRunes.
func Snippet(s string) string {
	return Truncate(Sanitize(s), types.MaxSnippetRunes)
}
