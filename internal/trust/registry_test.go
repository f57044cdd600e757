// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTrusted(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"exact host", "https://bbc.com/news/world", true},
		{"subdomain", "https://www.reuters.com/article/x", true},
		{"upper case host", "https://WWW.THEHINDU.COM/news", true},
		{"with port", "https://apnews.com:443/a", true},
		{"government", "https://rbi.org.in/Scripts/BS_PressReleaseDisplay.aspx", true},
		{"look-alike suffix still matches", "https://bbc.com.example.net/x", true},
		{"unknown host", "https://example.com/bbc.com", false},
		{"fact checker is not trusted", "https://www.snopes.com/fact-check/x", false},
		{"empty", "", false},
		{"no scheme", "bbc.com/news", false},
		{"unparseable", "http://[::1", false},
		{"control characters", "http://bbc.com/\x7f", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsTrusted(tt.url))
		})
	}
}

func TestIsFactChecker(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"snopes", "https://www.snopes.com/fact-check/x", true},
		{"boomlive", "https://www.boomlive.in/fake-news/y", true},
		{"fullfact", "https://fullfact.org/online/z", true},
		{"trusted outlet", "https://www.bbc.com/news", false},
		{"empty", "", false},
		{"unparseable", "http://[::1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsFactChecker(tt.url))
		})
	}
}

func TestPredicatesExclusiveForDefaults(t *testing.T) {
	r := Default()
	for _, d := range append(append([]string{}, TrustedDomains...), FactCheckDomains...) {
		u := "https://www." + d + "/page"
		assert.False(t, r.IsTrusted(u) && r.IsFactChecker(u), "%s tests positive for both", u)
	}
}

func TestClassify(t *testing.T) {
	r := Default()
	assert.Equal(t, TierTrusted, r.Classify("https://www.ndtv.com/india-news"))
	assert.Equal(t, TierFactChecker, r.Classify("https://www.altnews.in/x"))
	assert.Equal(t, TierUnclassified, r.Classify("https://random-blog.example/x"))
	assert.Equal(t, TierUnclassified, r.Classify(""))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "trusted", TierTrusted.String())
	assert.Equal(t, "fact_checker", TierFactChecker.String())
	assert.Equal(t, "unclassified", TierUnclassified.String())
}

func TestNewWithExtras(t *testing.T) {
	r, err := New([]string{" Example.ORG "}, []string{"factly.in"})
	require.NoError(t, err)

	assert.True(t, r.IsTrusted("https://news.example.org/a"))
	assert.True(t, r.IsFactChecker("https://factly.in/b"))
	assert.True(t, r.IsTrusted("https://bbc.com/c"), "defaults are kept")
}

func TestNewRejectsOverlap(t *testing.T) {
	_, err := New([]string{"snopes.com"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snopes.com")
}
