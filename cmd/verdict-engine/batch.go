// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/verdict-engine/internal/check"
)

const defaultConcurrency = 4

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Check every claim in a file, one per line",
	Long: `Batch reads claims one per line (use - for standard input). Blank lines and
lines starting with # are skipped, and repeated claims are checked once.
Claims are checked concurrently; a summary line is printed for each as it
finishes. Use --out to write the full results as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("concurrency", defaultConcurrency, "number of claims checked at once")
	batchCmd.Flags().String("out", "", "write full results as YAML to this file")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	claims, err := readClaimsFile(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		return fmt.Errorf("no claims found in %s", args[0])
	}

	e, err := buildEngine(cfg, os.Stderr, verbose)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	workers, _ := cmd.Flags().GetInt("concurrency")
	out := cmd.OutOrStdout()
	items := e.checker.EvaluateAll(ctx, claims, workers, func(item check.BatchItem) {
		printBatchLine(out, item)
	})

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}
	fmt.Fprintf(out, "\n%d claim(s) checked, %d failed\n", len(items), failed)

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if err := writeBatchYAML(path, items); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d claim(s) failed", failed)
	}
	return nil
}

func readClaimsFile(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return check.ReadClaims(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening claims file: %w", err)
	}
	defer f.Close()
	return check.ReadClaims(f)
}

func printBatchLine(w io.Writer, item check.BatchItem) {
	if item.Error != "" {
		fmt.Fprintf(w, "%-16s  %s  (%s)\n", "error", item.Claim, item.Error)
		return
	}
	label := item.Result.Verdict.Label
	// Pad before colouring so escape codes do not break alignment.
	padded := fmt.Sprintf("%-16s", label)
	fmt.Fprintf(w, "%s  %s\n", labelColor(label).Sprint(padded), item.Claim)
}

func writeBatchYAML(path string, items []check.BatchItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
