//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Check builds the CLI and checks one claim with it, for example
// mage check "RBI has issued new 1000 rupee notes".
func Check(claim string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "check", "--verbose", claim)
}

// Providers builds the CLI and lists the evidence providers with their
// credential state.
func Providers() error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), "providers"); err != nil {
		return fmt.Errorf("listing providers: %w", err)
	}
	return nil
}
