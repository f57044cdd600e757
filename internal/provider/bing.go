// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// bingSearchEndpoint is the Bing Web Search v7 API. Declared as a var so
// tests can substitute an httptest server.
var bingSearchEndpoint = "https://api.bing.microsoft.com/v7.0/search"

const (
	bingSearchCount  = 15
	bingSearchMarket = "en-IN"
)

// BingSearch queries Bing Web Search.
type BingSearch struct{ base }

// NewBingSearch creates the adapter. It is disabled without a subscription
// key.
func NewBingSearch(h HTTP, cfg types.ProviderConfig) *BingSearch {
	return &BingSearch{base{http: h, cfg: cfg}}
}

func (a *BingSearch) Name() string                 { return "bing_search" }
func (a *BingSearch) SourceType() types.SourceType { return types.SourceWebSearchB }

func (a *BingSearch) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	params := url.Values{
		"q":               {query},
		"mkt":             {bingSearchMarket},
		"count":           {strconv.Itoa(bingSearchCount)},
		"textDecorations": {"false"},
	}
	header := http.Header{"Ocp-Apim-Subscription-Key": {a.cfg.APIKey}}

	var resp bingSearchResponse
	if err := a.http.getJSON(ctx, bingSearchEndpoint, params, header, &resp); err != nil {
		return nil, err
	}

	var out []types.Evidence
	for _, it := range resp.WebPages.Value {
		out = append(out, types.Evidence{
			SourceType: types.SourceWebSearchB,
			Title:      Sanitize(it.Name),
			URL:        it.URL,
			Source:     it.DisplayURL,
			Snippet:    Snippet(it.Snippet),
			Confidence: types.ConfidenceMedium,
		})
	}
	return out, nil
}

type bingSearchResponse struct {
	WebPages struct {
		Value []struct {
			Name       string `json:"name"`
			URL        string `json:"url"`
			Snippet    string `json:"snippet"`
			DisplayURL string `json:"displayUrl"`
		} `json:"value"`
	} `json:"webPages"`
}
