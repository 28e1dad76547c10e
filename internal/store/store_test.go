package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruizf/biogen/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "biogen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRequestLog_AppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	log := s.RequestLog()

	require.NoError(t, log.AppendRequest(ctx, llm.RequestRecord{
		SessionID:    "sess-1",
		Provider:     "gemini-2.5-flash",
		Model:        "gemini-2.5-flash",
		Purpose:      "exam-gen:0",
		InputTokens:  500,
		OutputTokens: 2000,
		LatencyMs:    1800,
		Success:      true,
	}))
	require.NoError(t, log.AppendRequest(ctx, llm.RequestRecord{
		SessionID:    "sess-1",
		Provider:     "gemini-2.5-flash",
		Model:        "gemini-2.5-flash",
		Purpose:      "exam-gen:1",
		LatencyMs:    200,
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	sum, err := s.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Requests)
	assert.Equal(t, 1, sum.Failures)
	assert.Equal(t, 500, sum.InputTokens)
	assert.Equal(t, 2000, sum.OutputTokens)
	assert.Equal(t, 1000, sum.AvgLatencyMs)
}

func TestRecentFailures(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	log := s.RequestLog()

	require.NoError(t, log.AppendRequest(ctx, llm.RequestRecord{
		Provider: "mock", Model: "mock", Purpose: "exam-gen:2",
		Success: false, ErrorMessage: "provider unavailable",
	}))
	require.NoError(t, log.AppendRequest(ctx, llm.RequestRecord{
		Provider: "mock", Model: "mock", Purpose: "exam-gen:0", Success: true,
	}))

	failures, err := s.RecentFailures(ctx, 5)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "exam-gen:2")
	assert.Contains(t, failures[0], "provider unavailable")
}

func TestUsage_EmptyLog(t *testing.T) {
	s := openTestStore(t)
	sum, err := s.Usage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Requests)
}
