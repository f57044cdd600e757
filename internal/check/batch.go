// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ReadClaims reads one claim per line. Blank lines and lines starting with
// '#' are skipped, and repeated claims are kept once in first-seen order.
func ReadClaims(r io.Reader) ([]string, error) {
	var claims []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		claims = append(claims, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading claims: %w", err)
	}
	return claims, nil
}

// BatchItem is the outcome of one claim in a batch.
type BatchItem struct {
	Claim  string `json:"claim" yaml:"claim"`
	Result Result `json:"result" yaml:"result"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// EvaluateAll checks claims with a fixed number of workers. Items are
// returned in input order. onDone, if set, is called as each claim
// finishes; calls are serialized.
func (c *Checker) EvaluateAll(ctx context.Context, claims []string, workers int, onDone func(BatchItem)) []BatchItem {
	if workers <= 0 {
		workers = 1
	}

	items := make([]BatchItem, len(claims))
	started := make([]bool, len(claims))
	jobs := make(chan int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				item := BatchItem{Claim: claims[i]}
				res, err := c.Evaluate(ctx, claims[i])
				if err != nil {
					item.Error = err.Error()
				} else {
					item.Result = res
				}
				items[i] = item

				if onDone != nil {
					mu.Lock()
					onDone(item)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range claims {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
			started[i] = true
		}
	}
	close(jobs)
	wg.Wait()

	// Claims never handed to a worker report the cancellation.
	for i := range items {
		if !started[i] {
			items[i] = BatchItem{Claim: claims[i], Error: ctx.Err().Error()}
		}
	}
	return items
}
