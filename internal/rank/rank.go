// Package rank assigns a risk tier and confidence to canonical findings.
// Ranking is a pure function of status, field and semantic score so that
// identical inputs always produce identical reports.
package rank

import (
	"math"

	"github.com/clausematch/clausematch/internal/model"
)

// Ranker scores findings.
type Ranker struct{}

// NewRanker creates a new ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank computes the risk tier and confidence for one finding.
//
// The raw score weighs a hard mismatch most heavily, then how consequential
// the field is (money, date and id are high-stakes), then the classifier's
// confidence, with a small bonus when the rules agreed:
//
//	raw = 1.0*[MISMATCH] + 0.6*entityWeight + 0.3*semanticScore + 0.2*ruleAgreement
//
// HIGH above 1.2, MEDIUM above 0.7, LOW otherwise. Confidence blends the
// semantic score with a status prior (0.9 for OK, 0.6 otherwise), clamped to
// [0,1] and rounded to two decimals.
func (r *Ranker) Rank(f model.Finding) (model.Risk, float64) {
	entityWeight := 0.3
	switch f.Field {
	case model.FieldMoney, model.FieldDate, model.FieldID:
		entityWeight = 1.0
	}

	ruleAgreement := 0.0
	if f.Status == model.StatusOK {
		ruleAgreement = 1.0
	}

	mismatch := 0.0
	if f.Status == model.StatusMismatch {
		mismatch = 1.0
	}

	raw := mismatch + 0.6*entityWeight + 0.3*f.SemanticScore + 0.2*ruleAgreement

	risk := model.RiskLow
	switch {
	case raw > 1.2:
		risk = model.RiskHigh
	case raw > 0.7:
		risk = model.RiskMedium
	}

	prior := 0.6
	if f.Status == model.StatusOK {
		prior = 0.9
	}
	confidence := clamp01(0.5*f.SemanticScore + 0.5*prior)
	confidence = math.Round(confidence*100) / 100

	return risk, confidence
}

// Apply ranks every finding in place, overwriting its confidence.
func (r *Ranker) Apply(findings []model.Finding) {
	for i := range findings {
		risk, confidence := r.Rank(findings[i])
		findings[i].Risk = risk
		findings[i].Confidence = confidence
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
