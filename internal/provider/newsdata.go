// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// newsDataEndpoint is the NewsData.io latest news search. Declared as a var
// so tests can substitute an httptest server.
var newsDataEndpoint = "https://newsdata.io/api/1/news"

const newsDataSize = 15

// NewsData queries NewsData.io for real-time news.
type NewsData struct{ base }

// NewNewsData creates the adapter. It is disabled without an API key.
func NewNewsData(h HTTP, cfg types.ProviderConfig) *NewsData {
	return &NewsData{base{http: h, cfg: cfg}}
}

func (a *NewsData) Name() string                 { return "newsdata" }
func (a *NewsData) SourceType() types.SourceType { return types.SourceRealtimeNews }

func (a *NewsData) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	params := url.Values{
		"apikey":   {a.cfg.APIKey},
		"q":        {query},
		"language": {"en"},
		"size":     {strconv.Itoa(newsDataSize)},
	}

	var resp newsDataResponse
	if err := a.http.getJSON(ctx, newsDataEndpoint, params, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("%w: status %q", ErrStatus, resp.Status)
	}

	var out []types.Evidence
	for _, art := range resp.Results {
		out = append(out, types.Evidence{
			SourceType:  types.SourceRealtimeNews,
			Title:       Sanitize(art.Title),
			URL:         art.Link,
			Source:      art.SourceID,
			PublishedAt: art.PubDate,
			Snippet:     Snippet(art.Description),
			Confidence:  types.ConfidenceHigh,
		})
	}
	return out, nil
}

type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		SourceID    string `json:"source_id"`
		PubDate     string `json:"pubDate"`
		Description string `json:"description"`
	} `json:"results"`
}
