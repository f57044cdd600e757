// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/verdict-engine/internal/httputil"
	"github.com/pdiddy/verdict-engine/pkg/types"
)

// maxResponseBytes caps how much of a provider response is decoded.
const maxResponseBytes = 4 << 20

// HTTP holds the transport settings shared by every HTTP adapter.
type HTTP struct {
	Client     *http.Client
	UserAgent  string
	MaxRetries int
}

// NewHTTP builds the shared transport from configuration.
func NewHTTP(cfg types.HTTPConfig) HTTP {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return HTTP{
		Client:     &http.Client{Timeout: timeout},
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
}

func (h HTTP) client() *http.Client {
	if h.Client == nil {
		return http.DefaultClient
	}
	return h.Client
}

// getJSON issues a GET with query parameters and decodes the JSON body
// into out.
func (h HTTP) getJSON(ctx context.Context, endpoint string, params url.Values, header http.Header, out any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return h.do(ctx, req, out)
}

// postJSON issues a POST with a JSON body and decodes the JSON response
// into out.
func (h HTTP) postJSON(ctx context.Context, endpoint string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return h.do(ctx, req, out)
}

func (h HTTP) do(ctx context.Context, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, h.client(), req, h.MaxRetries)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("%w: HTTP %d", ErrStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// base carries the configuration every adapter shares.
type base struct {
	http HTTP
	cfg  types.ProviderConfig
}

func (b base) Enabled() bool          { return b.cfg.APIKey != "" }
func (b base) Timeout() time.Duration { return b.cfg.Timeout }
