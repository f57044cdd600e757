// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

func TestReadClaims(t *testing.T) {
	in := `# claims to check
RBI keeps repo rate unchanged

  ISRO launches PSLV  
RBI keeps repo rate unchanged
# trailing comment
`
	claims, err := ReadClaims(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"RBI keeps repo rate unchanged", "ISRO launches PSLV"}, claims)
}

func TestReadClaimsEmpty(t *testing.T) {
	claims, err := ReadClaims(strings.NewReader("\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, claims)
}

func TestEvaluateAllKeepsOrder(t *testing.T) {
	c := newChecker(&fakeAggregator{}, &fixedClassifier{c: types.FallbackClassification})
	claims := []string{"one", "two", "", "three", "four", "five"}

	var done []string
	items := c.EvaluateAll(context.Background(), claims, 3, func(it BatchItem) {
		done = append(done, it.Claim)
	})

	require.Len(t, items, len(claims))
	for i, it := range items {
		assert.Equal(t, claims[i], it.Claim)
	}
	assert.Equal(t, ErrEmptyClaim.Error(), items[2].Error)
	assert.Empty(t, items[0].Error)
	assert.Equal(t, types.LabelNeedsMoreProof, items[0].Result.Verdict.Label)
	assert.ElementsMatch(t, claims, done)
}

func TestEvaluateAllCancelled(t *testing.T) {
	c := newChecker(&fakeAggregator{}, &fixedClassifier{c: types.FallbackClassification})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := c.EvaluateAll(ctx, []string{"a", "b", "c"}, 1, nil)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, []string{"a", "b", "c"}[i], it.Claim)
		assert.Equal(t, context.Canceled.Error(), it.Error)
	}
}
