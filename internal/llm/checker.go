package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/clausematch/clausematch/internal/cache"
	"github.com/clausematch/clausematch/internal/model"
)

// Checker wraps a Classifier and turns its verdicts into semantic findings.
// It is best-effort by contract: any failure — missing provider, transport
// error, malformed response — degrades to an empty finding slice. Check
// never reports an error to its caller.
type Checker struct {
	classifier Classifier
	cache      cache.Cache
	limiter    *rate.Limiter
	verbose    bool
}

// NewChecker creates a checker. classifier may be nil (semantic checking
// disabled), cache may be nil (no memoization), limiter may be nil (no rate
// limiting).
func NewChecker(classifier Classifier, c cache.Cache, limiter *rate.Limiter, verbose bool) *Checker {
	return &Checker{
		classifier: classifier,
		cache:      c,
		limiter:    limiter,
		verbose:    verbose,
	}
}

// Enabled reports whether a classifier is configured.
func (c *Checker) Enabled() bool {
	return c != nil && c.classifier != nil
}

// Provider returns the configured provider name, or "" when disabled.
func (c *Checker) Provider() string {
	if !c.Enabled() {
		return ""
	}
	return c.classifier.Name()
}

// Check classifies one aligned pair. Identical cached pairs reuse the stored
// verdict so re-runs stay byte-identical and cheap.
func (c *Checker) Check(ctx context.Context, textA, textB string) []model.SemanticFinding {
	if !c.Enabled() {
		return nil
	}

	resp, ok := c.cached(textA, textB)
	if !ok {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil
			}
		}

		var err error
		resp, err = c.classifier.Classify(ctx, ClassifyRequest{TextA: textA, TextB: textB})
		if err != nil {
			if c.verbose {
				fmt.Fprintf(os.Stderr, "Warning: semantic check failed: %v\n", err)
			}
			return nil
		}
		c.store(textA, textB, resp)
	}

	return FindingsFromResponse(resp)
}

// FindingsFromResponse maps a classifier response to semantic findings: one
// finding per issue, all sharing the response's confidence as semanticScore.
// A response with no issues yields no findings.
func FindingsFromResponse(resp *ClassifyResponse) []model.SemanticFinding {
	if resp == nil || len(resp.Issues) == 0 {
		return nil
	}

	status := model.StatusOK
	switch resp.Status {
	case StatusMismatch:
		status = model.StatusMismatch
	case StatusReview:
		status = model.StatusReview
	}

	findings := make([]model.SemanticFinding, 0, len(resp.Issues))
	for _, issue := range resp.Issues {
		rationale := issue.Explanation
		if rationale == "" {
			rationale = fmt.Sprintf("classifier flagged %s issue", issue.Type)
		}
		findings = append(findings, model.SemanticFinding{
			Field:         normalizeField(issue.Type),
			Status:        status,
			Rationale:     rationale,
			SemanticScore: resp.Confidence,
		})
	}
	return findings
}

// normalizeField maps a classifier issue type onto a finding field,
// defaulting to entity for anything unrecognized. "monetary" is the
// classifier's name for money issues.
func normalizeField(issueType string) model.Field {
	switch strings.ToLower(strings.TrimSpace(issueType)) {
	case "date":
		return model.FieldDate
	case "money", "monetary":
		return model.FieldMoney
	case "number":
		return model.FieldNumber
	case "id":
		return model.FieldID
	case "entity":
		return model.FieldEntity
	default:
		return model.FieldEntity
	}
}

func (c *Checker) cached(textA, textB string) (*ClassifyResponse, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, found := c.cache.Get(cache.PairKey(textA, textB))
	if !found {
		return nil, false
	}
	var resp ClassifyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *Checker) store(textA, textB string, resp *ClassifyResponse) {
	if c.cache == nil || resp == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = c.cache.Set(cache.PairKey(textA, textB), data, 0)
}
