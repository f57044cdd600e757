// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Recognized key files are listed in Keys; other files are loaded too but
// nothing reads them.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Key file names read by the CLI.
const (
	FactCheckAPIKey      = "factcheck-api-key"
	NewsAPIAIKey         = "newsapi-ai-key"
	NewsDataKey          = "newsdata-io-key"
	NewsAPIKey           = "newsapi-key"
	GoogleAPIKey         = "google-api-key"
	GoogleSearchEngineID = "google-search-engine-id"
	BingAPIKey           = "bing-api-key"
	OpenAIAPIKey         = "openai-api-key"
)

// Keys lists the recognized key files in provider order.
var Keys = []string{
	FactCheckAPIKey,
	NewsAPIAIKey,
	NewsDataKey,
	NewsAPIKey,
	GoogleAPIKey,
	GoogleSearchEngineID,
	BingAPIKey,
	OpenAIAPIKey,
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on warn but do not abort; a nil warn
// writes to stderr.
func Load(dir string, warn io.Writer) (map[string]string, error) {
	if warn == nil {
		warn = os.Stderr
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Unknown returns the names in s that are not recognized key files, sorted.
func Unknown(s map[string]string) []string {
	known := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		known[k] = true
	}
	var out []string
	for k := range s {
		if !known[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
