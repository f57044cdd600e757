// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"strings"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// newsAPIAIEndpoint is the Event Registry article search. Declared as a var
// so tests can substitute an httptest server.
var newsAPIAIEndpoint = "https://newsapi.ai/api/v1/article/getArticles"

const (
	newsAPIAIArticles   = 20
	newsAPIAIWindowDays = 7
)

// NewsAPIAI queries newsapi.ai for recent articles about the Wikipedia
// concept named by the query.
type NewsAPIAI struct{ base }

// NewNewsAPIAI creates the adapter. It is disabled without an API key.
func NewNewsAPIAI(h HTTP, cfg types.ProviderConfig) *NewsAPIAI {
	return &NewsAPIAI{base{http: h, cfg: cfg}}
}

func (a *NewsAPIAI) Name() string                 { return "newsapi_ai" }
func (a *NewsAPIAI) SourceType() types.SourceType { return types.SourceAINews }

func (a *NewsAPIAI) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	var resp newsAPIAIResponse
	if err := a.http.postJSON(ctx, newsAPIAIEndpoint, newsAPIAIRequestBody(query, a.cfg.APIKey), &resp); err != nil {
		return nil, err
	}

	var out []types.Evidence
	for _, art := range resp.Articles.Results {
		source := Sanitize(art.Source.Title)
		if source == "" {
			source = "Unknown"
		}
		out = append(out, types.Evidence{
			SourceType:  types.SourceAINews,
			Title:       Sanitize(art.Title),
			URL:         art.URL,
			Source:      source,
			PublishedAt: art.DateTime,
			Snippet:     Snippet(art.Body),
			Sentiment:   art.Sentiment,
			Confidence:  types.ConfidenceHigh,
		})
	}
	return out, nil
}

// conceptURI maps a query to the Wikipedia concept URI the API filters on.
func conceptURI(query string) string {
	return "http://en.wikipedia.org/wiki/" + strings.ReplaceAll(query, " ", "_")
}

func newsAPIAIRequestBody(query, apiKey string) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"$query": map[string]any{
				"$and": []map[string]any{
					{"conceptUri": conceptURI(query)},
					{"lang": "eng"},
				},
			},
			"$filter": map[string]any{
				"forceMaxDataTimeWindow": newsAPIAIWindowDays,
			},
		},
		"resultType":     "articles",
		"articlesPage":   1,
		"articlesCount":  newsAPIAIArticles,
		"articlesSortBy": "date",
		"apiKey":         apiKey,
	}
}

type newsAPIAIResponse struct {
	Articles struct {
		Results []struct {
			Title     string  `json:"title"`
			URL       string  `json:"url"`
			Body      string  `json:"body"`
			DateTime  string  `json:"dateTime"`
			Sentiment float64 `json:"sentiment"`
			Source    struct {
				Title string `json:"title"`
			} `json:"source"`
		} `json:"results"`
	} `json:"articles"`
}
