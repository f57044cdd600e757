// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the verdict-engine CLI.
// Subcommands: check, batch, providers, trust, config, version.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/verdict-engine/internal/secrets"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is the effective configuration, resolved before any subcommand runs.
var cfg types.Config

// verbose enables per-provider status lines on stderr.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "verdict-engine",
	Short: "Classify claims as Fact, Misconception, or Needs more proof",
	Long: `verdict-engine checks a short claim against fact-check databases, news
APIs, and web search, and reduces the collected evidence to one of three
verdicts with a one-line reason and a grouped evidence report.

Providers without credentials are skipped. Credentials come from flags,
environment variables, files in .secrets/, or the config file, in that
order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
		verbose, _ = cmd.Flags().GetBool("verbose")

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, os.Stderr)
		if err != nil {
			return err
		}
		if len(s) > 0 && verbose {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		for _, name := range secrets.Unknown(s) {
			fmt.Fprintf(os.Stderr, "warning: unrecognized secret file %s\n", name)
		}

		c, err := loadConfig(viper.GetViper(), s)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./verdict-engine.yaml or ~/.config/verdict-engine/verdict-engine.yaml)")
	flags.String("secrets-dir", ".secrets/", "directory of credential files")
	flags.BoolP("verbose", "v", false, "log provider status to stderr")
	flags.Bool("no-color", false, "disable coloured output")
	flags.Bool("cache", false, "cache provider responses (overrides cache.enabled)")
	flags.String("cache-dir", "", "directory of the persistent response cache (overrides cache.dir)")
	flags.Duration("budget", 0, "overall deadline for all providers (overrides aggregate.budget)")
	flags.String("classifier", "", "baseline classifier backend: naive_bayes or openai")

	_ = viper.BindPFlag("cache.enabled", flags.Lookup("cache"))
	_ = viper.BindPFlag("cache.dir", flags.Lookup("cache-dir"))
	_ = viper.BindPFlag("aggregate.budget", flags.Lookup("budget"))
	_ = viper.BindPFlag("classifier.backend", flags.Lookup("classifier"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("verdict-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "verdict-engine"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config file %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
