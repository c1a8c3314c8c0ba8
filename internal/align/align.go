// Package align pairs clauses from two documents for comparison.
package align

import "github.com/clausematch/clausematch/internal/model"

// Embedder is the optional embedding subsystem used by the semantic
// alignment fallback. The core ships without an implementation.
type Embedder interface {
	Embed(texts []string) ([][]float32, error)
}

// Aligner pairs clauses positionally, falling back to embedding-based
// alignment only when the positional pass yields no pairs at all.
type Aligner struct {
	embedder Embedder
}

// NewAligner creates an aligner without an embedding subsystem.
func NewAligner() *Aligner {
	return &Aligner{}
}

// NewAlignerWithEmbedder creates an aligner that may use embeddings when the
// positional strategy produces nothing usable.
func NewAlignerWithEmbedder(e Embedder) *Aligner {
	return &Aligner{embedder: e}
}

// Align produces one pair per index up to the longer document's clause
// count, padding the shorter side with the empty string. Two empty inputs
// yield an empty sequence, not a single empty pair.
func (a *Aligner) Align(clausesA, clausesB []model.Clause) []model.AlignedPair {
	pairs := positional(clausesA, clausesB)
	if len(pairs) == 0 {
		return a.embedAlign(clausesA, clausesB)
	}
	return pairs
}

func positional(clausesA, clausesB []model.Clause) []model.AlignedPair {
	n := len(clausesA)
	if len(clausesB) > n {
		n = len(clausesB)
	}
	if n == 0 {
		return nil
	}

	pairs := make([]model.AlignedPair, 0, n)
	for i := 0; i < n; i++ {
		var a, b string
		if i < len(clausesA) {
			a = clausesA[i].Text
		}
		if i < len(clausesB) {
			b = clausesB[i].Text
		}
		pairs = append(pairs, model.AlignedPair{
			Key:   model.PairKey(i),
			TextA: a,
			TextB: b,
		})
	}
	return pairs
}

// embedAlign is the semantic fallback. Without an embedder it must return an
// empty sequence deterministically rather than fail.
func (a *Aligner) embedAlign(clausesA, clausesB []model.Clause) []model.AlignedPair {
	if a.embedder == nil {
		return nil
	}
	// An embedding subsystem could match clauses by cosine similarity here.
	// No implementation ships with the core, so behave like the nil case.
	return nil
}
