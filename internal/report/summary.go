// Package report aggregates findings into job summaries and renders them.
package report

import (
	"math"

	"github.com/clausematch/clausematch/internal/model"
	"github.com/clausematch/clausematch/internal/similarity"
)

// Summarize counts findings by status. Anything that is neither OK nor
// MISMATCH counts as review. Empty input yields all-zero counts.
func Summarize(findings []model.Finding) model.Summary {
	var s model.Summary
	for _, f := range findings {
		switch f.Status {
		case model.StatusOK:
			s.OK++
		case model.StatusMismatch:
			s.Mismatch++
		default:
			s.Review++
		}
	}
	return s
}

// SummarizeSimilarity is the simpler per-pair rollup: total pairs, pairs
// below the lexical mismatch threshold, and the average similarity (0.0 when
// there are no pairs, never a division by zero).
func SummarizeSimilarity(pairs []model.PairResult) model.SimilaritySummary {
	s := model.SimilaritySummary{Total: len(pairs)}
	if len(pairs) == 0 {
		return s
	}

	var sum float64
	for _, p := range pairs {
		sum += p.Similarity
		if p.Similarity < similarity.MismatchThreshold {
			s.Mismatches++
		}
	}
	s.AvgSimilarity = math.Round(sum/float64(len(pairs))*1000) / 1000
	return s
}
