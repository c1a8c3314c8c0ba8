package segment

import (
	"testing"
)

func TestSegment_SentencesAndLines(t *testing.T) {
	clauses := Segment("A. B.\n\nC!")

	texts := Texts(clauses)
	want := []string{"A", "B", "C"}
	if len(texts) != len(want) {
		t.Fatalf("Expected %d clauses, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("Clause %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestSegment_IndicesAreOneBased(t *testing.T) {
	clauses := Segment("First. Second.\nThird.")
	for i, c := range clauses {
		if c.Index != i+1 {
			t.Errorf("Clause %d: expected index %d, got %d", i, i+1, c.Index)
		}
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Errorf("Expected no clauses for empty input, got %v", got)
	}
}

func TestSegment_WhitespaceOnly(t *testing.T) {
	if got := Segment("   \n\t\n  . . \n"); len(got) != 0 {
		t.Errorf("Expected no clauses for whitespace input, got %v", got)
	}
}

func TestSegment_QuestionAndExclamationTerminate(t *testing.T) {
	clauses := Segment("Is this binding? Yes! Absolutely.")
	texts := Texts(clauses)
	want := []string{"Is this binding", "Yes", "Absolutely"}
	if len(texts) != 3 {
		t.Fatalf("Expected 3 clauses, got %v", texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("Clause %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestSegment_PreservesOrder(t *testing.T) {
	clauses := Segment("one.\ntwo.\nthree.")
	texts := Texts(clauses)
	want := []string{"one", "two", "three"}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("Clause %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestSegment_Deterministic(t *testing.T) {
	input := "Der Preis beträgt €1.500,00. Zahlbar bis 2024-01-15.\nGerichtsstand ist Berlin."
	first := Texts(Segment(input))
	for run := 0; run < 5; run++ {
		again := Texts(Segment(input))
		if len(again) != len(first) {
			t.Fatalf("Run %d: clause count changed from %d to %d", run, len(first), len(again))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Errorf("Run %d clause %d: %q != %q", run, i, again[i], first[i])
			}
		}
	}
}
