// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/verdict-engine/internal/trust"
)

var trustCmd = &cobra.Command{
	Use:   "trust <url>...",
	Short: "Print the trust tier of each URL",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := trust.New(cfg.Trust.ExtraTrusted, cfg.Trust.ExtraFactCheckers)
		if err != nil {
			return err
		}
		for _, u := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s  %s\n", registry.Classify(u), u)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trustCmd)
}
