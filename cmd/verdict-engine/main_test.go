// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/verdict-engine/internal/check"
	"github.com/pdiddy/verdict-engine/internal/secrets"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

func init() {
	color.NoColor = true
}

func viperWithFile(t *testing.T, body string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(body)))
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	got, err := loadConfig(viper.New(), nil)
	require.NoError(t, err)

	want := types.DefaultConfig()
	assert.Equal(t, want.HTTP, got.HTTP)
	assert.Equal(t, want.Aggregate, got.Aggregate)
	assert.Equal(t, want.Cache, got.Cache)
	assert.Equal(t, want.Classifier.Backend, got.Classifier.Backend)
	assert.Equal(t, want.Providers.NewsData.Timeout, got.Providers.NewsData.Timeout)
	assert.InDelta(t, want.Providers.FactCheck.RequestsPerSecond, got.Providers.FactCheck.RequestsPerSecond, 1e-9)
}

func TestLoadConfigFile(t *testing.T) {
	v := viperWithFile(t, `
aggregate:
  budget: 3s
cache:
  enabled: true
  dir: /tmp/verdict-cache
providers:
  newsapi:
    api_key: from-file
    timeout: 2s
  google_search:
    api_key: g-key
    engine_id: cx-1
trust:
  extra_trusted: [example.org]
`)
	got, err := loadConfig(v, nil)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, got.Aggregate.Budget)
	assert.True(t, got.Cache.Enabled)
	assert.Equal(t, "/tmp/verdict-cache", got.Cache.Dir)
	assert.Equal(t, "from-file", got.Providers.NewsAPI.APIKey)
	assert.Equal(t, 2*time.Second, got.Providers.NewsAPI.Timeout)
	assert.Equal(t, "g-key", got.Providers.GoogleSearch.APIKey)
	assert.Equal(t, "cx-1", got.Providers.GoogleSearch.EngineID)
	assert.Equal(t, []string{"example.org"}, got.Trust.ExtraTrusted)
	assert.Equal(t, 10*time.Second, got.Providers.NewsData.Timeout, "unset keys keep defaults")
}

func TestLoadConfigCredentialPrecedence(t *testing.T) {
	file := `
providers:
  newsapi:
    api_key: from-file
  bing:
    api_key: from-file
  newsdata:
    api_key: from-file
`
	t.Setenv("NEWSAPI_KEY", "")
	t.Setenv("BING_API_KEY", "from-env")
	t.Setenv(prefixedEnv("providers.newsdata.api_key"), "from-prefixed-env")
	t.Setenv("NEWSDATA_IO_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv(prefixedEnv("classifier.api_key"), "")
	t.Setenv(prefixedEnv("providers.newsapi.api_key"), "")
	t.Setenv(prefixedEnv("providers.bing.api_key"), "")

	s := map[string]string{
		secrets.NewsAPIKey:   "from-secret",
		secrets.BingAPIKey:   "from-secret",
		secrets.NewsDataKey:  "from-secret",
		secrets.OpenAIAPIKey: "sk-secret",
	}
	got, err := loadConfig(viperWithFile(t, file), s)
	require.NoError(t, err)

	assert.Equal(t, "from-secret", got.Providers.NewsAPI.APIKey, "secret beats config file")
	assert.Equal(t, "from-env", got.Providers.Bing.APIKey, "env beats secret")
	assert.Equal(t, "from-prefixed-env", got.Providers.NewsData.APIKey)
	assert.Equal(t, "sk-secret", got.Classifier.APIKey)
}

func TestLoadConfigEnvOverridesSettings(t *testing.T) {
	t.Setenv("VERDICT_ENGINE_CACHE_ENABLED", "true")
	t.Setenv("VERDICT_ENGINE_AGGREGATE_BUDGET", "750ms")

	got, err := loadConfig(viper.New(), nil)
	require.NoError(t, err)
	assert.True(t, got.Cache.Enabled)
	assert.Equal(t, 750*time.Millisecond, got.Aggregate.Budget)
}

func TestPrefixedEnv(t *testing.T) {
	assert.Equal(t, "VERDICT_ENGINE_PROVIDERS_FACT_CHECK_API_KEY", prefixedEnv("providers.fact_check.api_key"))
}

func TestReadClaim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claim.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file\n"), 0o644))

	got, err := readClaim([]string{"a", "b"}, path, strings.NewReader("stdin"))
	require.NoError(t, err)
	assert.Equal(t, "a b", got, "arguments win")

	got, err = readClaim(nil, path, strings.NewReader("stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from file\n", got)

	got, err = readClaim(nil, "", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = readClaim(nil, "", strings.NewReader("  \n"))
	require.Error(t, err)

	_, err = readClaim(nil, filepath.Join(dir, "missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading claim file")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, check.Result{
		Verdict: types.Verdict{Label: types.LabelFact, Reason: "Confirmed by 3 trusted sources."},
		Report:  "No evidence found.",
	})
	assert.Equal(t, "Verdict: Fact\nAnalysis: Confirmed by 3 trusted sources.\n\nNo evidence found.\n", buf.String())
}

func TestPrintBatchLine(t *testing.T) {
	var buf bytes.Buffer
	printBatchLine(&buf, check.BatchItem{
		Claim:  "the sky is green",
		Result: check.Result{Verdict: types.Verdict{Label: types.LabelMisconception}},
	})
	printBatchLine(&buf, check.BatchItem{Claim: "x", Error: "context canceled"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Misconception     the sky is green", lines[0])
	assert.Equal(t, "error             x  (context canceled)", lines[1])
}

func TestBuildEngine(t *testing.T) {
	c := types.DefaultConfig()
	c.Cache.Enabled = true
	c.Cache.Dir = t.TempDir()
	c.Providers.NewsAPI.APIKey = "k"

	var logs bytes.Buffer
	e, err := buildEngine(c, &logs, false)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })

	assert.FileExists(t, filepath.Join(c.Cache.Dir, "responses.db"))

	var buf bytes.Buffer
	printProviders(&buf, e.aggregator.Adapters())
	out := buf.String()
	assert.Contains(t, out, "factcheck_tools")
	assert.Regexp(t, `newsapi\s+standard_news\s+8s\s+enabled`, out)
	assert.Regexp(t, `bing_search\s+web_search_b\s+8s\s+disabled`, out)
}

func TestBuildEngineRejectsBadConfig(t *testing.T) {
	c := types.DefaultConfig()
	c.Trust.ExtraTrusted = []string{"snopes.com"}
	_, err := buildEngine(c, &bytes.Buffer{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trust registry")

	c = types.DefaultConfig()
	c.Classifier.Backend = "oracle"
	_, err = buildEngine(c, &bytes.Buffer{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier")
}

func TestWriteBatchYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	items := []check.BatchItem{{Claim: "a", Error: "boom"}}
	require.NoError(t, writeBatchYAML(path, items))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "claim: a")
	assert.Contains(t, string(data), "error: boom")
}
