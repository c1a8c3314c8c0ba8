// Package llm is the boundary to the external semantic classifier. The
// classifier is a black box that judges whether two clause texts agree; the
// pipeline treats it as best-effort enrichment and never depends on it.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Classification statuses returned by the external classifier.
const (
	StatusMatch    = "MATCH"
	StatusMismatch = "MISMATCH"
	StatusReview   = "REVIEW"
)

// ClassifyRequest carries the two clause texts to compare.
type ClassifyRequest struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

// Issue is a single typed discrepancy reported by the classifier.
type Issue struct {
	Type        string `json:"type"` // number, date, monetary, entity
	Explanation string `json:"explanation,omitempty"`
}

// ClassifyResponse is the classifier's verdict for one pair of texts.
type ClassifyResponse struct {
	Status     string  `json:"status"`     // MATCH, MISMATCH, REVIEW
	Confidence float64 `json:"confidence"` // 0.0 - 1.0
	Issues     []Issue `json:"issues"`

	Model      string `json:"model,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// Classifier is the capability interface for the external classifier.
// Implementations wrap one provider's API; tests substitute a stub.
type Classifier interface {
	// Name returns the provider name.
	Name() string

	// Classify compares two clause texts.
	Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds classifier provider configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens limits the response length
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults with the classifier disabled.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

const systemPrompt = "You are a bilingual contract comparison assistant. You compare two versions of the same clause and report factual discrepancies. Respond with JSON only."

// BuildPrompt constructs the classification prompt for one clause pair.
func BuildPrompt(req ClassifyRequest) string {
	return fmt.Sprintf(`Compare these two versions of the same contract clause. They may be in different languages. Report whether they factually agree.

Clause A:
%s

Clause B:
%s

Respond with a single JSON object, no prose:
{
  "status": "MATCH" | "MISMATCH" | "REVIEW",
  "confidence": <0.0-1.0>,
  "issues": [{"type": "number" | "date" | "monetary" | "entity", "explanation": "<short reason>"}]
}

Rules:
- status MISMATCH when any amount, date, quantity, identifier or named party differs.
- status REVIEW when you cannot tell whether the clauses agree.
- issues is empty when the clauses agree.`, req.TextA, req.TextB)
}

// ParseClassification extracts a ClassifyResponse from raw model output.
// Models sometimes wrap JSON in markdown fences or prepend prose; tolerate
// both by slicing from the first '{' to the last '}'.
func ParseClassification(content string) (*ClassifyResponse, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in classifier output")
	}

	var resp ClassifyResponse
	if err := json.Unmarshal([]byte(content[start:end+1]), &resp); err != nil {
		return nil, fmt.Errorf("unmarshal classification: %w", err)
	}

	resp.Status = strings.ToUpper(strings.TrimSpace(resp.Status))
	switch resp.Status {
	case StatusMatch, StatusMismatch, StatusReview:
	default:
		return nil, fmt.Errorf("unknown classification status: %q", resp.Status)
	}

	if resp.Confidence < 0 {
		resp.Confidence = 0
	}
	if resp.Confidence > 1 {
		resp.Confidence = 1
	}

	return &resp, nil
}
