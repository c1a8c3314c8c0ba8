// Package similarity provides a cheap lexical similarity proxy for aligned
// clause pairs. It is a screening metric, not NLP-grade alignment.
package similarity

import (
	"math"
	"strings"
)

// Score returns a similarity in [0,1] for two clause texts, rounded to three
// decimals. It blends a length ratio, which penalizes large size mismatches,
// with token-set overlap. Two empty texts score 1.0; one empty text 0.0.
func Score(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	minLen := float64(len(a))
	if len(b) < len(a) {
		minLen = float64(len(b))
	}
	avgLen := float64(len(a)+len(b)) / 2.0
	base := minLen / avgLen

	setA := tokenSet(a)
	setB := tokenSet(b)
	inter := 0
	union := len(setB)
	for tok := range setA {
		if setB[tok] {
			inter++
		} else {
			union++
		}
	}
	if union < 1 {
		union = 1
	}
	overlap := float64(inter) / float64(union)

	score := 0.5*base + 0.5*overlap
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return round3(score)
}

// MismatchThreshold is the similarity below which a pair is flagged as a
// lexical mismatch in the similarity rollup.
const MismatchThreshold = 0.6

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = true
	}
	return set
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
