// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// googleSearchEndpoint is the Custom Search JSON API. Declared as a var so
// tests can substitute an httptest server.
var googleSearchEndpoint = "https://www.googleapis.com/customsearch/v1"

const googleSearchNum = 10

// GoogleSearch queries a Google Programmable Search Engine.
type GoogleSearch struct {
	base
	engineID string
}

// NewGoogleSearch creates the adapter. It needs both an API key and an
// engine ID to be enabled.
func NewGoogleSearch(h HTTP, cfg types.GoogleSearchConfig) *GoogleSearch {
	return &GoogleSearch{base: base{http: h, cfg: cfg.ProviderConfig}, engineID: cfg.EngineID}
}

func (a *GoogleSearch) Name() string                 { return "google_search" }
func (a *GoogleSearch) SourceType() types.SourceType { return types.SourceWebSearchA }
func (a *GoogleSearch) Enabled() bool                { return a.cfg.APIKey != "" && a.engineID != "" }

func (a *GoogleSearch) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	params := url.Values{
		"key": {a.cfg.APIKey},
		"cx":  {a.engineID},
		"q":   {query},
		"num": {strconv.Itoa(googleSearchNum)},
	}

	var resp googleSearchResponse
	if err := a.http.getJSON(ctx, googleSearchEndpoint, params, nil, &resp); err != nil {
		return nil, err
	}

	var out []types.Evidence
	for _, it := range resp.Items {
		out = append(out, types.Evidence{
			SourceType: types.SourceWebSearchA,
			Title:      Sanitize(it.Title),
			URL:        it.Link,
			Source:     it.DisplayLink,
			Snippet:    Snippet(it.Snippet),
			Confidence: types.ConfidenceMedium,
		})
	}
	return out, nil
}

type googleSearchResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Snippet     string `json:"snippet"`
		DisplayLink string `json:"displayLink"`
	} `json:"items"`
}
