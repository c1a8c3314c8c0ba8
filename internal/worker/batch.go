package worker

import (
	"context"

	"github.com/clausematch/clausematch/internal/model"
)

// Comparer runs one document-pair comparison. The pipeline implements it;
// tests substitute a stub.
type Comparer interface {
	CompareSources(ctx context.Context, sourceA, sourceB string) (*model.Report, error)
}

// CompareJob compares one document pair from a batch file.
type CompareJob struct {
	SourceA  string
	SourceB  string
	Comparer Comparer
}

// Execute runs the comparison.
func (j *CompareJob) Execute(ctx context.Context) Result {
	report, err := j.Comparer.CompareSources(ctx, j.SourceA, j.SourceB)
	return &CompareResult{
		SourceA: j.SourceA,
		SourceB: j.SourceB,
		Report:  report,
		Err:     err,
	}
}

// CompareResult is the outcome of one batch comparison.
type CompareResult struct {
	SourceA string
	SourceB string
	Report  *model.Report
	Err     error
}

// GetError returns the comparison error, if any.
func (r *CompareResult) GetError() error {
	return r.Err
}

// BatchProcessor compares multiple document pairs concurrently.
type BatchProcessor struct {
	comparer    Comparer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(comparer Comparer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		comparer:    comparer,
		concurrency: concurrency,
	}
}

// Pair names one document pair to compare.
type Pair struct {
	SourceA string
	SourceB string
}

// Process compares all pairs and returns one result per pair, in completion
// order.
func (b *BatchProcessor) Process(ctx context.Context, pairs []Pair) []*CompareResult {
	if len(pairs) == 0 {
		return []*CompareResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start(ctx)

	for _, p := range pairs {
		pool.Submit(&CompareJob{
			SourceA:  p.SourceA,
			SourceB:  p.SourceB,
			Comparer: b.comparer,
		})
	}

	raw := pool.Wait()
	results := make([]*CompareResult, 0, len(raw))
	for _, r := range raw {
		if cr, ok := r.(*CompareResult); ok {
			results = append(results, cr)
		}
	}
	return results
}
