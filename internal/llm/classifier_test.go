package llm

import (
	"strings"
	"testing"
)

func TestParseClassification_PlainJSON(t *testing.T) {
	resp, err := ParseClassification(`{"status": "MISMATCH", "confidence": 0.85, "issues": [{"type": "monetary", "explanation": "amounts differ"}]}`)
	if err != nil {
		t.Fatalf("ParseClassification failed: %v", err)
	}
	if resp.Status != StatusMismatch {
		t.Errorf("Expected MISMATCH, got %s", resp.Status)
	}
	if resp.Confidence != 0.85 {
		t.Errorf("Expected confidence 0.85, got %v", resp.Confidence)
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Type != "monetary" {
		t.Errorf("Unexpected issues: %v", resp.Issues)
	}
}

func TestParseClassification_MarkdownFenced(t *testing.T) {
	content := "Here is my analysis:\n```json\n{\"status\": \"match\", \"confidence\": 0.9, \"issues\": []}\n```\nDone."

	resp, err := ParseClassification(content)
	if err != nil {
		t.Fatalf("ParseClassification failed: %v", err)
	}
	if resp.Status != StatusMatch {
		t.Errorf("Expected status normalized to MATCH, got %s", resp.Status)
	}
}

func TestParseClassification_NoJSON(t *testing.T) {
	if _, err := ParseClassification("I cannot compare these clauses."); err == nil {
		t.Error("Expected error for output without JSON")
	}
}

func TestParseClassification_UnknownStatus(t *testing.T) {
	if _, err := ParseClassification(`{"status": "MAYBE", "confidence": 0.5}`); err == nil {
		t.Error("Expected error for unknown status")
	}
}

func TestParseClassification_ClampsConfidence(t *testing.T) {
	resp, err := ParseClassification(`{"status": "REVIEW", "confidence": 1.7}`)
	if err != nil {
		t.Fatalf("ParseClassification failed: %v", err)
	}
	if resp.Confidence != 1.0 {
		t.Errorf("Expected confidence clamped to 1.0, got %v", resp.Confidence)
	}

	resp, err = ParseClassification(`{"status": "REVIEW", "confidence": -0.2}`)
	if err != nil {
		t.Fatalf("ParseClassification failed: %v", err)
	}
	if resp.Confidence != 0.0 {
		t.Errorf("Expected confidence clamped to 0.0, got %v", resp.Confidence)
	}
}

func TestBuildPrompt_IncludesBothTexts(t *testing.T) {
	prompt := BuildPrompt(ClassifyRequest{
		TextA: "The fee is EUR 1500",
		TextB: "Die Gebühr beträgt 1600 Euro",
	})

	if !strings.Contains(prompt, "The fee is EUR 1500") {
		t.Error("Prompt missing clause A")
	}
	if !strings.Contains(prompt, "Die Gebühr beträgt 1600 Euro") {
		t.Error("Prompt missing clause B")
	}
	if !strings.Contains(prompt, "MISMATCH") {
		t.Error("Prompt missing status vocabulary")
	}
}
