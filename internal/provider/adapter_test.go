// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/verdict-engine/pkg/types"
)

// stubAdapter is an in-memory Adapter for boundary and decorator tests.
type stubAdapter struct {
	name     string
	st       types.SourceType
	enabled  bool
	timeout  time.Duration
	evidence []types.Evidence
	err      error
	delay    time.Duration
	panicMsg string
	calls    int
}

func (s *stubAdapter) Name() string                 { return s.name }
func (s *stubAdapter) SourceType() types.SourceType { return s.st }
func (s *stubAdapter) Enabled() bool                { return s.enabled }
func (s *stubAdapter) Timeout() time.Duration       { return s.timeout }

func (s *stubAdapter) Fetch(ctx context.Context, _ string) ([]types.Evidence, error) {
	s.calls++
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.evidence, s.err
}

func TestFetchDisabledMakesNoCall(t *testing.T) {
	a := &stubAdapter{name: "x", st: types.SourceStandardNews}
	res := Fetch(context.Background(), a, "q")

	assert.Equal(t, StatusDisabled, res.Status)
	assert.ErrorIs(t, res.Err, ErrDisabled)
	assert.Empty(t, res.Evidence)
	assert.Equal(t, 0, a.calls)
	assert.Equal(t, "x", res.Name)
	assert.Equal(t, types.SourceStandardNews, res.SourceType)
}

func TestFetchOK(t *testing.T) {
	a := &stubAdapter{
		name: "x", st: types.SourceStandardNews, enabled: true,
		evidence: []types.Evidence{{Title: "a"}, {SourceType: types.SourceWebSearchA, Title: "b"}},
	}
	res := Fetch(context.Background(), a, "q")

	require.Equal(t, StatusOK, res.Status)
	require.Len(t, res.Evidence, 2)
	assert.Equal(t, types.SourceStandardNews, res.Evidence[0].SourceType, "missing source type is stamped")
	assert.Equal(t, types.SourceWebSearchA, res.Evidence[1].SourceType, "explicit source type is kept")
	assert.NoError(t, res.Err)
}

func TestFetchErrorIsIsolated(t *testing.T) {
	a := &stubAdapter{
		name: "x", st: types.SourceStandardNews, enabled: true,
		evidence: []types.Evidence{{Title: "partial"}},
		err:      ErrMalformed,
	}
	res := Fetch(context.Background(), a, "q")

	assert.Equal(t, StatusFailed, res.Status)
	assert.Empty(t, res.Evidence)
	assert.ErrorIs(t, res.Err, ErrMalformed)
}

func TestFetchRecoversPanic(t *testing.T) {
	a := &stubAdapter{name: "x", st: types.SourceStandardNews, enabled: true, panicMsg: "boom"}
	res := Fetch(context.Background(), a, "q")

	assert.Equal(t, StatusFailed, res.Status)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "boom")
}

func TestFetchTimeout(t *testing.T) {
	a := &stubAdapter{
		name: "x", st: types.SourceStandardNews, enabled: true,
		timeout: 10 * time.Millisecond, delay: time.Second,
	}
	start := time.Now()
	res := Fetch(context.Background(), a, "q")

	assert.Equal(t, StatusTimedOut, res.Status)
	assert.True(t, errors.Is(res.Err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
