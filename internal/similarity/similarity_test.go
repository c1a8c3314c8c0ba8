package similarity

import "testing"

func TestScore_BothEmpty(t *testing.T) {
	if got := Score("", ""); got != 1.0 {
		t.Errorf("Expected 1.0 for two empty texts, got %v", got)
	}
}

func TestScore_OneEmpty(t *testing.T) {
	if got := Score("some text", ""); got != 0.0 {
		t.Errorf("Expected 0.0 when one side is empty, got %v", got)
	}
	if got := Score("", "some text"); got != 0.0 {
		t.Errorf("Expected 0.0 when one side is empty, got %v", got)
	}
}

func TestScore_Identical(t *testing.T) {
	if got := Score("the fee is 1500", "the fee is 1500"); got != 1.0 {
		t.Errorf("Expected 1.0 for identical texts, got %v", got)
	}
}

func TestScore_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "completely different and much longer text"},
		{"short", "short but not the same"},
		{"x y z", "z y x"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestScore_CaseInsensitiveTokens(t *testing.T) {
	if got := Score("Fee Due Now", "fee due now"); got != 1.0 {
		t.Errorf("Expected 1.0 for case-only difference, got %v", got)
	}
}

func TestScore_Symmetric(t *testing.T) {
	a, b := "payment due within 30 days", "payment due in 30 days"
	if Score(a, b) != Score(b, a) {
		t.Errorf("Score is not symmetric: %v vs %v", Score(a, b), Score(b, a))
	}
}

func TestScore_DisjointTokensLowerThanShared(t *testing.T) {
	shared := Score("alpha beta gamma", "alpha beta delta")
	disjoint := Score("alpha beta gamma", "epsilon zeta etaa")
	if disjoint >= shared {
		t.Errorf("Expected disjoint tokens to score below shared tokens: %v >= %v", disjoint, shared)
	}
}
