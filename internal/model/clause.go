package model

import "fmt"

// Clause is the atomic comparison unit produced by segmentation.
// Index is the 1-based position of the clause within its source document.
type Clause struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// AlignedPair associates one clause from each document for comparison.
// Either side may be empty when the documents have unequal clause counts.
type AlignedPair struct {
	Key   string `json:"key"`
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

// PairKey builds the stable identifier for the pair at position i (0-based,
// matching the aligner's iteration order).
func PairKey(i int) string {
	return fmt.Sprintf("clause_%d", i)
}

// Context is a supporting snippet attached to a finding. The pipeline treats
// contexts as opaque; renderers decide how to display them.
type Context struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}
