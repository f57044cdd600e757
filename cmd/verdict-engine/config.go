// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/verdict-engine/internal/secrets"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

const envPrefix = "VERDICT_ENGINE"

// credential ties a config key to the plain environment variable and the
// secrets file that may supply it.
type credential struct {
	key    string
	env    string
	secret string
}

var credentials = []credential{
	{"providers.fact_check.api_key", "FACTCHECK_API_KEY", secrets.FactCheckAPIKey},
	{"providers.newsapi_ai.api_key", "NEWSAPI_AI_KEY", secrets.NewsAPIAIKey},
	{"providers.newsdata.api_key", "NEWSDATA_IO_KEY", secrets.NewsDataKey},
	{"providers.newsapi.api_key", "NEWSAPI_KEY", secrets.NewsAPIKey},
	{"providers.google_search.api_key", "GOOGLE_API_KEY", secrets.GoogleAPIKey},
	{"providers.google_search.engine_id", "SEARCH_ENGINE_ID", secrets.GoogleSearchEngineID},
	{"providers.bing.api_key", "BING_API_KEY", secrets.BingAPIKey},
	{"classifier.api_key", "OPENAI_API_KEY", secrets.OpenAIAPIKey},
}

// prefixedEnv returns the prefixed variable name for a config key, for
// example VERDICT_ENGINE_CACHE_ENABLED for cache.enabled.
func prefixedEnv(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// loadConfig resolves the effective configuration from v on top of
// types.DefaultConfig. Credentials are taken from flags, then environment
// variables, then secrets files, then the config file.
func loadConfig(v *viper.Viper, s map[string]string) (types.Config, error) {
	cfg := types.DefaultConfig()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := registerDefaults(v, cfg); err != nil {
		return cfg, err
	}

	for _, c := range credentials {
		prefixed := prefixedEnv(c.key)
		if err := v.BindEnv(c.key, prefixed, c.env); err != nil {
			return cfg, fmt.Errorf("binding %s: %w", c.key, err)
		}
		if envSet(prefixed, c.env) {
			continue
		}
		if value, ok := s[c.secret]; ok {
			v.Set(c.key, value)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func envSet(names ...string) bool {
	for _, n := range names {
		if v, ok := os.LookupEnv(n); ok && v != "" {
			return true
		}
	}
	return false
}

// registerDefaults makes every key of cfg known to v, so environment
// variables can override keys the config file does not mention.
func registerDefaults(v *viper.Viper, cfg types.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("decoding defaults: %w", err)
	}
	setDefaults(v, "", tree)

	// Keys dropped by omitempty.
	for _, key := range []string{"cache.dir", "classifier.corpus_path", "classifier.base_url"} {
		v.SetDefault(key, "")
	}
	return nil
}

func setDefaults(v *viper.Viper, prefix string, tree map[string]any) {
	for k, val := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := val.(map[string]any); ok {
			setDefaults(v, key, sub)
			continue
		}
		v.SetDefault(key, val)
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML with credentials masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg.Redacted()); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
