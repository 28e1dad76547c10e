package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aruizf/biogen/internal/llm"
)

// Config controls exam generation.
type Config struct {
	// Subtopics are the thematic blocks the exam is split across.
	Subtopics []string

	// Temperature for the generation requests. The exam wants variety,
	// so the default sits above the provider default.
	Temperature float64

	// MaxTokensPerBatch caps each batch response.
	MaxTokensPerBatch int

	// BatchTimeout bounds one sub-topic request. A hung call costs its
	// batch, never the whole exam.
	BatchTimeout time.Duration
}

// DefaultConfig returns the standard exam configuration.
func DefaultConfig() Config {
	return Config{
		Subtopics:         Subtopics,
		Temperature:       0.8,
		MaxTokensPerBatch: 8192,
		BatchTimeout:      90 * time.Second,
	}
}

// BatchResult is the typed outcome of one sub-topic request. A failed
// batch carries its error and zero questions; failure is isolated, never
// propagated to sibling batches.
type BatchResult struct {
	// Topic is the sub-topic label for this batch.
	Topic string

	// Index is the batch position (0-3), which also seeds question ids.
	Index int

	// Questions are the normalized questions this batch contributed.
	Questions []Question

	// Dropped counts raw questions discarded by sanitization.
	Dropped int

	// Err is the request or parse error, nil on success.
	Err error
}

// Generator is the question source adapter: it fans out one request per
// sub-topic, normalizes the responses and aggregates them into a single
// ordered question list.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces up to total questions, split evenly across the
// configured sub-topics. All batch requests run concurrently and Generate
// waits for every one to settle before aggregating.
//
// The returned question list is empty only when every batch failed; the
// caller treats that as a hard failure. The batch results preserve
// per-batch diagnostics either way.
func (g *Generator) Generate(ctx context.Context, total int) ([]Question, []BatchResult) {
	if total <= 0 || len(g.config.Subtopics) == 0 {
		return nil, nil
	}

	batchSize := (total + len(g.config.Subtopics) - 1) / len(g.config.Subtopics)

	results := make([]BatchResult, len(g.config.Subtopics))
	var wg sync.WaitGroup
	for i, topic := range g.config.Subtopics {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = g.generateBatch(ctx, i, topic, batchSize)
		}()
	}
	wg.Wait()

	// Aggregate in sub-topic order; some batches over- or underproduce
	// relative to the even split, so truncate to the requested total.
	var questions []Question
	for _, r := range results {
		questions = append(questions, r.Questions...)
	}
	if len(questions) > total {
		questions = questions[:total]
	}

	return questions, results
}

// batchResponse is the raw JSON shape of one batch.
type batchResponse struct {
	Questions []rawQuestion `json:"questions"`
}

// generateBatch requests and normalizes one sub-topic batch. Every error
// path degrades to an empty contribution with the error recorded.
func (g *Generator) generateBatch(ctx context.Context, index int, topic string, batchSize int) BatchResult {
	result := BatchResult{Topic: topic, Index: index}

	ctx = llm.WithPurpose(ctx, fmt.Sprintf("exam-gen:%d", index))
	ctx, cancel := context.WithTimeout(ctx, g.config.BatchTimeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildBatchPrompt(topic, batchSize),
		Schema:      ExamSchema,
		MaxTokens:   g.config.MaxTokensPerBatch,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		result.Err = fmt.Errorf("batch %q: %w", topic, err)
		return result
	}

	var parsed batchResponse
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		result.Err = fmt.Errorf("batch %q: parse response: %w", topic, err)
		return result
	}

	result.Questions, result.Dropped = normalizeBatch(index, topic, parsed.Questions)
	return result
}
