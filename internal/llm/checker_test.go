package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clausematch/clausematch/internal/cache"
	"github.com/clausematch/clausematch/internal/model"
)

// stubClassifier returns a fixed response or error and counts calls.
type stubClassifier struct {
	resp  *ClassifyResponse
	err   error
	calls int
}

func (s *stubClassifier) Name() string { return "stub" }

func (s *stubClassifier) Classify(_ context.Context, _ ClassifyRequest) (*ClassifyResponse, error) {
	s.calls++
	return s.resp, s.err
}

func (s *stubClassifier) IsAvailable(_ context.Context) bool { return true }

func TestChecker_DisabledWithoutClassifier(t *testing.T) {
	c := NewChecker(nil, nil, nil, false)

	if c.Enabled() {
		t.Error("Expected checker without classifier to be disabled")
	}
	if findings := c.Check(context.Background(), "a", "b"); findings != nil {
		t.Errorf("Expected nil findings when disabled, got %v", findings)
	}
	if c.Provider() != "" {
		t.Errorf("Expected empty provider when disabled, got %q", c.Provider())
	}
}

func TestChecker_MapsIssuesToFindings(t *testing.T) {
	stub := &stubClassifier{resp: &ClassifyResponse{
		Status:     StatusMismatch,
		Confidence: 0.85,
		Issues: []Issue{
			{Type: "monetary", Explanation: "amounts differ"},
			{Type: "date"},
		},
	}}
	c := NewChecker(stub, nil, nil, false)

	findings := c.Check(context.Background(), "fee 1500", "fee 1600")
	if len(findings) != 2 {
		t.Fatalf("Expected 2 findings, got %d", len(findings))
	}

	if findings[0].Field != model.FieldMoney || findings[0].Status != model.StatusMismatch {
		t.Errorf("Unexpected first finding: %+v", findings[0])
	}
	if findings[0].Rationale != "amounts differ" {
		t.Errorf("Unexpected rationale: %q", findings[0].Rationale)
	}
	if findings[0].SemanticScore != 0.85 || findings[1].SemanticScore != 0.85 {
		t.Error("Expected confidence shared across all findings")
	}
	// Missing explanation gets a generated rationale.
	if findings[1].Field != model.FieldDate || findings[1].Rationale == "" {
		t.Errorf("Unexpected second finding: %+v", findings[1])
	}
}

func TestChecker_DegradesOnError(t *testing.T) {
	stub := &stubClassifier{err: errors.New("provider unavailable")}
	c := NewChecker(stub, nil, nil, false)

	if findings := c.Check(context.Background(), "a", "b"); findings != nil {
		t.Errorf("Expected nil findings on classifier error, got %v", findings)
	}
}

func TestChecker_NoIssuesNoFindings(t *testing.T) {
	stub := &stubClassifier{resp: &ClassifyResponse{Status: StatusMatch, Confidence: 0.95}}
	c := NewChecker(stub, nil, nil, false)

	if findings := c.Check(context.Background(), "same", "same"); len(findings) != 0 {
		t.Errorf("Expected no findings for a clean MATCH, got %v", findings)
	}
}

func TestChecker_CachesResponses(t *testing.T) {
	stub := &stubClassifier{resp: &ClassifyResponse{
		Status:     StatusMismatch,
		Confidence: 0.8,
		Issues:     []Issue{{Type: "number", Explanation: "quantity differs"}},
	}}
	c := NewChecker(stub, cache.NewMemoryCache(time.Minute, time.Minute), nil, false)

	first := c.Check(context.Background(), "ten units", "twelve units")
	second := c.Check(context.Background(), "ten units", "twelve units")

	if stub.calls != 1 {
		t.Errorf("Expected 1 classifier call for identical pair, got %d", stub.calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Expected 1 finding from both runs, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Errorf("Cached result differs: %+v vs %+v", first[0], second[0])
	}
}

func TestFindingsFromResponse_FieldNormalization(t *testing.T) {
	tests := []struct {
		issueType string
		want      model.Field
	}{
		{"monetary", model.FieldMoney},
		{"money", model.FieldMoney},
		{"date", model.FieldDate},
		{"number", model.FieldNumber},
		{"id", model.FieldID},
		{"entity", model.FieldEntity},
		{"  Entity ", model.FieldEntity},
		{"something-else", model.FieldEntity},
	}

	for _, tt := range tests {
		resp := &ClassifyResponse{
			Status:     StatusReview,
			Confidence: 0.5,
			Issues:     []Issue{{Type: tt.issueType, Explanation: "x"}},
		}
		findings := FindingsFromResponse(resp)
		if len(findings) != 1 {
			t.Fatalf("%q: expected 1 finding", tt.issueType)
		}
		if findings[0].Field != tt.want {
			t.Errorf("%q: expected field %s, got %s", tt.issueType, tt.want, findings[0].Field)
		}
	}
}

func TestFindingsFromResponse_Nil(t *testing.T) {
	if findings := FindingsFromResponse(nil); findings != nil {
		t.Errorf("Expected nil for nil response, got %v", findings)
	}
}
