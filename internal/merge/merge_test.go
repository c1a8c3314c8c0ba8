package merge

import (
	"testing"

	"github.com/clausematch/clausematch/internal/model"
)

var testContexts = []model.Context{
	{Label: "A", Text: "clause a"},
	{Label: "B", Text: "clause b"},
}

func TestMerge_NothingToReport(t *testing.T) {
	findings := Merge("clause_0", nil, nil, testContexts)
	if len(findings) != 1 {
		t.Fatalf("Expected exactly one OK finding, got %d", len(findings))
	}

	f := findings[0]
	if f.Status != model.StatusOK {
		t.Errorf("Expected OK, got %s", f.Status)
	}
	if f.Confidence != 0.9 || f.SemanticScore != 0.9 {
		t.Errorf("Expected confidence and semantic score 0.9, got %v / %v", f.Confidence, f.SemanticScore)
	}
	if f.Rationale != "no diffs" {
		t.Errorf("Unexpected rationale: %q", f.Rationale)
	}
	if f.RulesTriggered == nil || len(f.RulesTriggered) != 0 {
		t.Errorf("Expected empty rules list, got %v", f.RulesTriggered)
	}
	if len(f.Contexts) != 2 {
		t.Errorf("Expected contexts attached, got %v", f.Contexts)
	}
}

func TestMerge_RuleFinding(t *testing.T) {
	rf := []model.RuleFinding{{
		Field:     model.FieldMoney,
		Status:    model.StatusMismatch,
		Rationale: "150000 != 160000",
	}}

	findings := Merge("clause_2", rf, nil, testContexts)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.ClauseKey != "clause_2" {
		t.Errorf("Expected clause_2, got %q", f.ClauseKey)
	}
	if f.Confidence != 0.7 {
		t.Errorf("Expected rule confidence 0.7, got %v", f.Confidence)
	}
	if f.SemanticScore != 0.0 {
		t.Errorf("Expected semantic score 0.0 for rule finding, got %v", f.SemanticScore)
	}
	if len(f.RulesTriggered) != 1 || f.RulesTriggered[0] != "money" {
		t.Errorf("Expected rules [money], got %v", f.RulesTriggered)
	}
}

func TestMerge_SemanticFinding(t *testing.T) {
	sf := []model.SemanticFinding{{
		Field:         model.FieldEntity,
		Status:        model.StatusReview,
		Rationale:     "party name differs",
		SemanticScore: 0.8,
	}}

	findings := Merge("clause_0", nil, sf, testContexts)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.Status != model.StatusReview || f.Field != model.FieldEntity {
		t.Errorf("Unexpected finding: %+v", f)
	}
	if f.SemanticScore != 0.8 {
		t.Errorf("Expected semantic score 0.8, got %v", f.SemanticScore)
	}
	if len(f.RulesTriggered) != 1 || f.RulesTriggered[0] != "LLM" {
		t.Errorf("Expected rules [LLM], got %v", f.RulesTriggered)
	}
}

func TestMerge_RulesBeforeSemantic(t *testing.T) {
	rf := []model.RuleFinding{
		{Field: model.FieldMoney, Status: model.StatusOK, Rationale: "equal"},
		{Field: model.FieldDate, Status: model.StatusMismatch, Rationale: "dates differ"},
	}
	sf := []model.SemanticFinding{
		{Field: model.FieldEntity, Status: model.StatusMismatch, Rationale: "party renamed", SemanticScore: 0.9},
	}

	findings := Merge("clause_1", rf, sf, testContexts)
	if len(findings) != 3 {
		t.Fatalf("Expected 3 findings, got %d", len(findings))
	}
	if findings[0].Field != model.FieldMoney || findings[1].Field != model.FieldDate {
		t.Errorf("Rule findings out of order: %v", findings)
	}
	if findings[2].RulesTriggered[0] != "LLM" {
		t.Errorf("Expected semantic finding last, got %v", findings[2])
	}

	// No synthetic OK finding when anything else was reported.
	for _, f := range findings {
		if f.Rationale == "no diffs" {
			t.Errorf("Unexpected clean finding among real findings: %+v", f)
		}
	}
}
