// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/verdict-engine/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List evidence providers in aggregation order",
	Long: `Providers lists every evidence provider in the order its evidence is
consumed, with its source type and whether credentials are configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEngine(cfg, os.Stderr, false)
		if err != nil {
			return err
		}
		defer e.Close()

		printProviders(cmd.OutOrStdout(), e.aggregator.Adapters())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func printProviders(w io.Writer, adapters []provider.Adapter) {
	fmt.Fprintf(w, "%-16s  %-14s  %-8s  %s\n", "Provider", "Source type", "Timeout", "State")
	for _, a := range adapters {
		state := "enabled"
		if !a.Enabled() {
			state = "disabled (no credentials)"
		}
		fmt.Fprintf(w, "%-16s  %-14s  %-8s  %s\n", a.Name(), a.SourceType(), a.Timeout(), state)
	}
}
