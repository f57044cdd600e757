// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/verdict-engine/internal/check"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [claim...]",
	Short: "Check one claim and print the verdict with its evidence report",
	Long: `Check gathers evidence for a claim from every configured provider,
then prints the verdict, a one-line analysis, and the evidence grouped by
source.

The claim is taken from the arguments, from --file, or from standard input,
in that order.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("file", "", "read the claim from a file")
	checkCmd.Flags().Bool("json", false, "output the full result as JSON")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	claim, err := readClaim(args, path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	e, err := buildEngine(cfg, os.Stderr, verbose)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := e.checker.Evaluate(ctx, claim)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(cmd.OutOrStdout(), result)
	if verbose {
		fmt.Fprintf(os.Stderr, "Checked in %s (rule %d)\n", result.Elapsed.Round(time.Millisecond), result.Verdict.Rule)
	}
	return nil
}

// readClaim returns the claim text from args, the named file, or in.
func readClaim(args []string, path string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading claim file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading claim from stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("provide a claim as arguments, with --file, or on stdin")
	}
	return string(data), nil
}

func printResult(w io.Writer, r check.Result) {
	fmt.Fprintf(w, "Verdict: %s\n", labelColor(r.Verdict.Label).Sprint(r.Verdict.Label))
	fmt.Fprintf(w, "Analysis: %s\n\n", r.Verdict.Reason)
	fmt.Fprintln(w, r.Report)
}

func labelColor(l types.Label) *color.Color {
	switch l {
	case types.LabelFact:
		return color.New(color.FgGreen, color.Bold)
	case types.LabelMisconception:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgYellow, color.Bold)
	}
}
