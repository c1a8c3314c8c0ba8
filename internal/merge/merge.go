// Package merge fuses rule-based and semantic findings for one aligned pair
// into canonical finding records.
package merge

import "github.com/clausematch/clausematch/internal/model"

// Confidence constants for merged findings. Semantic findings get no fixed
// confidence here; the ranker assigns it.
const (
	cleanConfidence = 0.9 // pair with no findings from either source
	ruleConfidence  = 0.7
)

// Merge combines the two finding sources for one pair. A pair with nothing
// to report yields exactly one OK finding. Otherwise rule-derived findings
// come first, then semantic-derived findings; both carry the shared contexts.
func Merge(key string, ruleFindings []model.RuleFinding, semFindings []model.SemanticFinding, contexts []model.Context) []model.Finding {
	if len(ruleFindings) == 0 && len(semFindings) == 0 {
		return []model.Finding{{
			ClauseKey:      key,
			Status:         model.StatusOK,
			Confidence:     cleanConfidence,
			SemanticScore:  cleanConfidence,
			Rationale:      "no diffs",
			RulesTriggered: []string{},
			Contexts:       contexts,
		}}
	}

	findings := make([]model.Finding, 0, len(ruleFindings)+len(semFindings))

	for _, rf := range ruleFindings {
		findings = append(findings, model.Finding{
			ClauseKey:      key,
			Status:         rf.Status,
			Field:          rf.Field,
			Confidence:     ruleConfidence,
			SemanticScore:  0.0,
			Rationale:      rf.Rationale,
			RulesTriggered: []string{string(rf.Field)},
			Contexts:       contexts,
		})
	}

	for _, sf := range semFindings {
		findings = append(findings, model.Finding{
			ClauseKey:      key,
			Status:         sf.Status,
			Field:          sf.Field,
			SemanticScore:  sf.SemanticScore,
			Rationale:      sf.Rationale,
			RulesTriggered: []string{"LLM"},
			Contexts:       contexts,
		})
	}

	return findings
}
