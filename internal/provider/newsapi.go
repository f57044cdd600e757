// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// newsAPIEndpoint is the NewsAPI.org everything search. Declared as a var so
// tests can substitute an httptest server.
var newsAPIEndpoint = "https://newsapi.org/v2/everything"

const newsAPIPageSize = 15

// NewsAPI queries NewsAPI.org for standard news coverage.
type NewsAPI struct{ base }

// NewNewsAPI creates the adapter. It is disabled without an API key.
func NewNewsAPI(h HTTP, cfg types.ProviderConfig) *NewsAPI {
	return &NewsAPI{base{http: h, cfg: cfg}}
}

func (a *NewsAPI) Name() string                 { return "newsapi" }
func (a *NewsAPI) SourceType() types.SourceType { return types.SourceStandardNews }

func (a *NewsAPI) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	params := url.Values{
		"q":        {query},
		"language": {"en"},
		"sortBy":   {"relevancy"},
		"pageSize": {strconv.Itoa(newsAPIPageSize)},
		"apiKey":   {a.cfg.APIKey},
	}

	var resp newsAPIResponse
	if err := a.http.getJSON(ctx, newsAPIEndpoint, params, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "error" {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Message)
	}

	var out []types.Evidence
	for _, art := range resp.Articles {
		out = append(out, types.Evidence{
			SourceType:  types.SourceStandardNews,
			Title:       Sanitize(art.Title),
			URL:         art.URL,
			Source:      Sanitize(art.Source.Name),
			PublishedAt: art.PublishedAt,
			Snippet:     Snippet(art.Description),
			Confidence:  types.ConfidenceMedium,
		})
	}
	return out, nil
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}
