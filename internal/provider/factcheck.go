// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// factCheckEndpoint is the Google Fact Check Tools claim search. Declared as
// a var so tests can substitute an httptest server.
var factCheckEndpoint = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

const factCheckPageSize = 10

// FactCheckTools queries the Google Fact Check Tools API. Each claim review
// becomes one evidence item.
type FactCheckTools struct{ base }

// NewFactCheckTools creates the adapter. It is disabled without an API key.
func NewFactCheckTools(h HTTP, cfg types.ProviderConfig) *FactCheckTools {
	return &FactCheckTools{base{http: h, cfg: cfg}}
}

func (a *FactCheckTools) Name() string                 { return "factcheck_tools" }
func (a *FactCheckTools) SourceType() types.SourceType { return types.SourceFactCheck }

func (a *FactCheckTools) Fetch(ctx context.Context, query string) ([]types.Evidence, error) {
	params := url.Values{
		"query":        {query},
		"key":          {a.cfg.APIKey},
		"pageSize":     {strconv.Itoa(factCheckPageSize)},
		"languageCode": {"en"},
	}

	var resp factCheckResponse
	if err := a.http.getJSON(ctx, factCheckEndpoint, params, nil, &resp); err != nil {
		return nil, err
	}

	var out []types.Evidence
	for _, c := range resp.Claims {
		claim := Sanitize(c.Text)
		for _, rev := range c.ClaimReview {
			publisher := Sanitize(rev.Publisher.Name)
			out = append(out, types.Evidence{
				SourceType:  types.SourceFactCheck,
				Title:       claim,
				URL:         rev.URL,
				Source:      publisher,
				Rating:      Sanitize(rev.TextualRating),
				Publisher:   publisher,
				PublishedAt: rev.ReviewDate,
				Snippet:     Snippet(rev.Title),
				Confidence:  types.ConfidenceVeryHigh,
			})
		}
	}
	return out, nil
}

type factCheckResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			URL           string `json:"url"`
			Title         string `json:"title"`
			ReviewDate    string `json:"reviewDate"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}
