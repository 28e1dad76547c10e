package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "true_false", "short_answer"},
							"description": "El tipo de pregunta.",
						},
						"correctIndex": map[string]any{"type": "integer"},
					},
					"required": []any{"type"},
				},
			},
		},
		"required": []any{"questions"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %v", schema.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "questions" {
		t.Fatalf("unexpected required: %v", schema.Required)
	}

	questions := schema.Properties["questions"]
	if questions == nil || questions.Type != genai.TypeArray {
		t.Fatal("expected questions array property")
	}

	item := questions.Items
	if item == nil || item.Type != genai.TypeObject {
		t.Fatal("expected object items schema")
	}

	typeProp := item.Properties["type"]
	if typeProp == nil {
		t.Fatal("expected type property")
	}
	if len(typeProp.Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(typeProp.Enum))
	}
	if typeProp.Description != "El tipo de pregunta." {
		t.Fatalf("unexpected description: %q", typeProp.Description)
	}

	if item.Properties["correctIndex"].Type != genai.TypeInteger {
		t.Fatal("expected integer correctIndex")
	}
}

func TestGeminiTruncated(t *testing.T) {
	truncated := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "MAX_TOKENS"}},
	}
	if !geminiTruncated(truncated) {
		t.Fatal("expected MAX_TOKENS finish to count as truncated")
	}

	stopped := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "STOP"}},
	}
	if geminiTruncated(stopped) {
		t.Fatal("STOP finish should not count as truncated")
	}

	if geminiTruncated(&genai.GenerateContentResponse{}) {
		t.Fatal("empty response should not count as truncated")
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Fatalf("expected friendly name resolution, got %q", got)
	}
	if got := resolveModel("gemini-exp-something", geminiModels); got != "gemini-exp-something" {
		t.Fatalf("expected passthrough for unknown model, got %q", got)
	}
}
