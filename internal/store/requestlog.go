package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aruizf/biogen/internal/llm"
)

// requestLog implements llm.RequestLog against the llm_requests table.
type requestLog struct {
	store *Store
}

// RequestLog returns the LLM request log backed by this store.
func (s *Store) RequestLog() llm.RequestLog {
	return &requestLog{store: s}
}

func (l *requestLog) AppendRequest(ctx context.Context, rec llm.RequestRecord) error {
	_, err := l.store.db.ExecContext(ctx,
		`INSERT INTO llm_requests
			(created_at, session_id, provider, model, purpose,
			 input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), rec.SessionID, rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, rec.Success, rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// UsageSummary aggregates the request log for the stats command.
type UsageSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// Usage computes the aggregate usage summary across all logged requests.
func (s *Store) Usage(ctx context.Context) (UsageSummary, error) {
	var sum UsageSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0),
			COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		 FROM llm_requests`,
	).Scan(&sum.Requests, &sum.Failures, &sum.InputTokens, &sum.OutputTokens, &sum.AvgLatencyMs)
	if err != nil {
		return UsageSummary{}, fmt.Errorf("usage summary: %w", err)
	}
	return sum, nil
}

// RecentFailures returns the error messages of the most recent failed
// requests, newest first.
func (s *Store) RecentFailures(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT purpose, error_message FROM llm_requests
		 WHERE success = 0 ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent failures: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var purpose, msg string
		if err := rows.Scan(&purpose, &msg); err != nil {
			return nil, fmt.Errorf("scan failure row: %w", err)
		}
		out = append(out, fmt.Sprintf("[%s] %s", purpose, msg))
	}
	return out, rows.Err()
}
