// Package pipeline orchestrates the clause comparison flow: segmentation,
// alignment, fact extraction and rule comparison, optional semantic
// checking, merging, ranking and summarization.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/clausematch/clausematch/internal/align"
	"github.com/clausematch/clausematch/internal/cache"
	"github.com/clausematch/clausematch/internal/extract"
	"github.com/clausematch/clausematch/internal/ingest"
	"github.com/clausematch/clausematch/internal/llm"
	"github.com/clausematch/clausematch/internal/merge"
	"github.com/clausematch/clausematch/internal/model"
	"github.com/clausematch/clausematch/internal/rank"
	"github.com/clausematch/clausematch/internal/report"
	"github.com/clausematch/clausematch/internal/rules"
	"github.com/clausematch/clausematch/internal/segment"
	"github.com/clausematch/clausematch/internal/similarity"
	"github.com/clausematch/clausematch/internal/worker"
)

// Pipeline runs comparison jobs. It holds no per-job state: everything a job
// produces is owned by that job's Run call and handed to the caller.
type Pipeline struct {
	aligner   *align.Aligner
	extractor *extract.FactExtractor
	checker   *llm.Checker
	ranker    *rank.Ranker
	renderer  *report.Renderer
	fetcher   *Fetcher
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration. A misconfigured
// classifier disables semantic checking with a warning instead of failing
// the pipeline.
func NewPipeline(cfg *model.Config) *Pipeline {
	var classifier llm.Classifier
	if cfg.LLM.Provider != "" {
		c, err := llm.NewClassifier(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			classifier = c
		}
	}

	var responseCache cache.Cache
	if cfg.Cache.Enabled && classifier != nil {
		if cfg.Cache.Dir != "" {
			responseCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			responseCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	var limiter *rate.Limiter
	if classifier != nil && cfg.Concurrency.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Concurrency.RequestsPerSecond), cfg.Concurrency.Burst)
	}

	return &Pipeline{
		aligner:   align.NewAligner(),
		extractor: extract.NewFactExtractor(),
		checker:   llm.NewChecker(classifier, responseCache, limiter, cfg.Output.Verbose),
		ranker:    rank.NewRanker(),
		renderer:  report.NewRenderer(cfg.Output.IncludeFooter),
		fetcher:   NewFetcher(cfg.HTTP, worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)),
		config:    cfg,
	}
}

// SetClassifier swaps in a concrete classifier, bypassing provider
// configuration. The replacement checker runs uncached and unthrottled.
func (p *Pipeline) SetClassifier(c llm.Classifier) {
	p.checker = llm.NewChecker(c, nil, nil, p.config.Output.Verbose)
}

// Run compares two decoded document texts and returns the complete report.
// The job either completes with a full result or fails wholesale; there is
// no partial success beyond per-finding REVIEW statuses.
func (p *Pipeline) Run(ctx context.Context, textA, textB string) (rep *model.Report, err error) {
	// An escaped panic in the per-pair loop is a job-level failure, not a
	// crash of the process hosting other jobs.
	defer func() {
		if r := recover(); r != nil {
			rep = nil
			err = fmt.Errorf("pipeline failure: %v", r)
		}
	}()

	clausesA := segment.Segment(textA)
	clausesB := segment.Segment(textB)
	pairs := p.aligner.Align(clausesA, clausesB)

	// Semantic checks are the only blocking I/O; run them across pairs in
	// parallel, keyed back to pair index so output ordering is stable.
	workers := p.config.Concurrency.SemanticWorkers
	semFindings := worker.RunOrdered(ctx, len(pairs), workers, func(ctx context.Context, i int) []model.SemanticFinding {
		return p.checker.Check(ctx, pairs[i].TextA, pairs[i].TextB)
	})

	var findings []model.Finding
	pairResults := make([]model.PairResult, 0, len(pairs))

	for i, pair := range pairs {
		factsA := p.extractor.Extract(pair.TextA)
		factsB := p.extractor.Extract(pair.TextB)
		ruleFindings := rules.Compare(factsA, factsB)

		contexts := []model.Context{
			{Label: "A", Text: pair.TextA},
			{Label: "B", Text: pair.TextB},
		}

		merged := merge.Merge(pair.Key, ruleFindings, semFindings[i], contexts)
		p.ranker.Apply(merged)
		findings = append(findings, merged...)

		pairResults = append(pairResults, model.PairResult{
			Key:        pair.Key,
			TextA:      pair.TextA,
			TextB:      pair.TextB,
			Similarity: similarity.Score(pair.TextA, pair.TextB),
		})
	}

	rep = &model.Report{
		CreatedAt:  time.Now().UTC(),
		Pairs:      pairResults,
		Findings:   findings,
		Summary:    report.Summarize(findings),
		Similarity: report.SummarizeSimilarity(pairResults),
	}

	if p.checker.Enabled() {
		rep.Classifier = &model.ClassifierMeta{
			Enabled:  true,
			Provider: p.checker.Provider(),
			Model:    p.config.LLM.Model,
		}
	}

	return rep, nil
}

// CompareSources resolves each source — a local file path or an http(s)
// URL — to text and runs the comparison.
func (p *Pipeline) CompareSources(ctx context.Context, sourceA, sourceB string) (*model.Report, error) {
	textA, err := p.resolve(ctx, sourceA)
	if err != nil {
		return nil, fmt.Errorf("source A: %w", err)
	}
	textB, err := p.resolve(ctx, sourceB)
	if err != nil {
		return nil, fmt.Errorf("source B: %w", err)
	}

	rep, err := p.Run(ctx, textA, textB)
	if err != nil {
		return nil, err
	}
	rep.SourceA = sourceA
	rep.SourceB = sourceB
	return rep, nil
}

func (p *Pipeline) resolve(ctx context.Context, source string) (string, error) {
	if IsURL(source) {
		return p.fetcher.FetchText(ctx, source)
	}
	return ingest.ParseDocument(source)
}

// Renderer exposes the pipeline's renderer for callers that write reports.
func (p *Pipeline) Renderer() *report.Renderer {
	return p.renderer
}

// RenderReport writes the report to the requested outputs and prints the
// stdout summary.
func (p *Pipeline) RenderReport(rep *model.Report, jsonPath, mdPath, htmlPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(rep, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(rep, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if htmlPath != "" {
		if err := p.renderer.RenderHTMLFile(rep, htmlPath); err != nil {
			return fmt.Errorf("render HTML: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote HTML: %s\n", htmlPath)
		}
	}

	p.renderer.RenderSummary(rep)
	return nil
}
