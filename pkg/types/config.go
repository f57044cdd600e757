package types

import "time"

// HTTPConfig holds shared HTTP settings used by every provider adapter.
type HTTPConfig struct {
	// Timeout bounds every HTTP request, whatever the provider timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with provider requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429/503 (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// ProviderConfig holds the settings of a single evidence provider. An empty
// APIKey disables the provider.
type ProviderConfig struct {
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Timeout bounds one call to the provider.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// RequestsPerSecond and Burst configure the provider's token bucket.
	// Zero disables rate limiting.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// GoogleSearchConfig adds the Programmable Search Engine ID, which is
// required alongside the API key.
type GoogleSearchConfig struct {
	ProviderConfig `yaml:",inline" mapstructure:",squash"`

	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty" mapstructure:"engine_id"`
}

// ProvidersConfig lists every evidence provider in aggregation order.
type ProvidersConfig struct {
	FactCheck    ProviderConfig     `json:"fact_check" yaml:"fact_check" mapstructure:"fact_check"`
	NewsAPIAI    ProviderConfig     `json:"newsapi_ai" yaml:"newsapi_ai" mapstructure:"newsapi_ai"`
	NewsData     ProviderConfig     `json:"newsdata" yaml:"newsdata" mapstructure:"newsdata"`
	NewsAPI      ProviderConfig     `json:"newsapi" yaml:"newsapi" mapstructure:"newsapi"`
	GoogleSearch GoogleSearchConfig `json:"google_search" yaml:"google_search" mapstructure:"google_search"`
	Bing         ProviderConfig     `json:"bing" yaml:"bing" mapstructure:"bing"`
}

// AggregateConfig bounds the fan-out step.
type AggregateConfig struct {
	// Budget is the overall deadline for all providers of one query. When it
	// expires the aggregator proceeds with whatever has completed.
	Budget time.Duration `json:"budget" yaml:"budget" mapstructure:"budget"`
}

// CacheConfig controls the provider response cache. Verdicts are never
// cached.
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`

	// Dir holds the SQLite database of the persistent layer. Empty keeps the
	// cache in memory only.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
}

// ClassifierBackend selects the baseline classifier implementation.
type ClassifierBackend string

const (
	ClassifierNaiveBayes ClassifierBackend = "naive_bayes"
	ClassifierOpenAI     ClassifierBackend = "openai"
)

// ClassifierConfig holds settings for the baseline classifier.
type ClassifierConfig struct {
	Backend ClassifierBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// CorpusPath points at a YAML seed corpus for the naive Bayes backend.
	// Empty uses the embedded corpus.
	CorpusPath string `json:"corpus_path,omitempty" yaml:"corpus_path,omitempty" mapstructure:"corpus_path"`

	// Model, APIKey and BaseURL configure the OpenAI backend.
	Model   string        `json:"model,omitempty" yaml:"model,omitempty" mapstructure:"model"`
	APIKey  string        `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL string        `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// TrustConfig appends domains to the built-in trust lists. It is read once
// at startup.
type TrustConfig struct {
	ExtraTrusted      []string `json:"extra_trusted,omitempty" yaml:"extra_trusted,omitempty" mapstructure:"extra_trusted"`
	ExtraFactCheckers []string `json:"extra_fact_checkers,omitempty" yaml:"extra_fact_checkers,omitempty" mapstructure:"extra_fact_checkers"`
}

// Config groups the configuration of every stage.
type Config struct {
	HTTP       HTTPConfig       `json:"http" yaml:"http" mapstructure:"http"`
	Providers  ProvidersConfig  `json:"providers" yaml:"providers" mapstructure:"providers"`
	Aggregate  AggregateConfig  `json:"aggregate" yaml:"aggregate" mapstructure:"aggregate"`
	Cache      CacheConfig      `json:"cache" yaml:"cache" mapstructure:"cache"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" mapstructure:"classifier"`
	Trust      TrustConfig      `json:"trust" yaml:"trust" mapstructure:"trust"`
}

// DefaultConfig returns the built-in defaults. All providers start disabled
// because no credentials are configured.
func DefaultConfig() Config {
	fast := ProviderConfig{Timeout: 8 * time.Second, RequestsPerSecond: 2, Burst: 2}
	slow := ProviderConfig{Timeout: 10 * time.Second, RequestsPerSecond: 1, Burst: 1}

	return Config{
		HTTP: HTTPConfig{
			Timeout:    15 * time.Second,
			UserAgent:  "verdict-engine/0.1",
			MaxRetries: 2,
		},
		Providers: ProvidersConfig{
			FactCheck:    fast,
			NewsAPIAI:    slow,
			NewsData:     slow,
			NewsAPI:      fast,
			GoogleSearch: GoogleSearchConfig{ProviderConfig: fast},
			Bing:         fast,
		},
		Aggregate: AggregateConfig{Budget: 15 * time.Second},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     30 * time.Minute,
		},
		Classifier: ClassifierConfig{
			Backend: ClassifierNaiveBayes,
			Model:   "gpt-4o-mini",
			Timeout: 10 * time.Second,
		},
	}
}

// Redacted returns a copy of c with every credential masked, for display.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "********"
	}
	out := c
	out.Providers.FactCheck.APIKey = mask(c.Providers.FactCheck.APIKey)
	out.Providers.NewsAPIAI.APIKey = mask(c.Providers.NewsAPIAI.APIKey)
	out.Providers.NewsData.APIKey = mask(c.Providers.NewsData.APIKey)
	out.Providers.NewsAPI.APIKey = mask(c.Providers.NewsAPI.APIKey)
	out.Providers.GoogleSearch.APIKey = mask(c.Providers.GoogleSearch.APIKey)
	out.Providers.Bing.APIKey = mask(c.Providers.Bing.APIKey)
	out.Classifier.APIKey = mask(c.Classifier.APIKey)
	return out
}
