package model

import "time"

// Report is the complete result of one comparison job.
type Report struct {
	SourceA   string    `json:"source_a,omitempty"` // filename or URL of document A
	SourceB   string    `json:"source_b,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Pairs    []PairResult `json:"pairs"`
	Findings []Finding    `json:"findings"`

	Summary    Summary           `json:"summary"`
	Similarity SimilaritySummary `json:"similarity"`

	Classifier *ClassifierMeta `json:"classifier,omitempty"` // set when semantic checking ran
}

// PairResult records an aligned pair together with its cheap similarity proxy.
type PairResult struct {
	Key        string  `json:"key"`
	TextA      string  `json:"text_a"`
	TextB      string  `json:"text_b"`
	Similarity float64 `json:"similarity"`
}

// Summary counts canonical findings by status. Statuses other than OK and
// MISMATCH count as review.
type Summary struct {
	OK       int `json:"ok"`
	Review   int `json:"review"`
	Mismatch int `json:"mismatch"`
}

// SimilaritySummary is the per-pair similarity rollup. AvgSimilarity is 0.0
// when there are no pairs.
type SimilaritySummary struct {
	Total         int     `json:"total"`
	Mismatches    int     `json:"mismatches"`
	AvgSimilarity float64 `json:"avg_similarity"`
}

// ClassifierMeta documents which classifier produced the semantic findings.
type ClassifierMeta struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// JobStatus tracks the lifecycle of a comparison job in the job store.
type JobStatus string

const (
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
)
