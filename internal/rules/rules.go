// Package rules compares extracted fact sets and emits rule-based findings.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clausematch/clausematch/internal/model"
)

// Compare evaluates the comparable fields of two fact sets. A field with no
// facts on either side produces no finding.
//
// Money: one side absent is a REVIEW, differing sums a MISMATCH. Dates are
// compared as unordered sets and any difference is a MISMATCH — including
// one side having no dates at all. The asymmetry with the money rule is
// intentional and relied upon by callers.
func Compare(a, b model.FactSet) []model.RuleFinding {
	var findings []model.RuleFinding

	if a.HasMoney() || b.HasMoney() {
		findings = append(findings, compareMoney(a, b))
	}

	if a.HasDates() || b.HasDates() {
		findings = append(findings, compareDates(a, b))
	}

	return findings
}

func compareMoney(a, b model.FactSet) model.RuleFinding {
	sumA, okA := a.MoneySum()
	sumB, okB := b.MoneySum()

	switch {
	case !okA || !okB:
		return model.RuleFinding{
			Field:     model.FieldMoney,
			Status:    model.StatusReview,
			Rationale: "missing on one side",
		}
	case sumA != sumB:
		return model.RuleFinding{
			Field:     model.FieldMoney,
			Status:    model.StatusMismatch,
			Rationale: fmt.Sprintf("%d != %d", sumA, sumB),
		}
	default:
		return model.RuleFinding{
			Field:     model.FieldMoney,
			Status:    model.StatusOK,
			Rationale: "equal",
		}
	}
}

func compareDates(a, b model.FactSet) model.RuleFinding {
	if !dateSetsEqual(a.Dates, b.Dates) {
		return model.RuleFinding{
			Field:     model.FieldDate,
			Status:    model.StatusMismatch,
			Rationale: fmt.Sprintf("dates differ: [%s] vs [%s]", joinSorted(a.Dates), joinSorted(b.Dates)),
		}
	}
	return model.RuleFinding{
		Field:     model.FieldDate,
		Status:    model.StatusOK,
		Rationale: "equal",
	}
}

func dateSetsEqual(a, b []string) bool {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for d := range setA {
		if !setB[d] {
			return false
		}
	}
	return true
}

func toSet(dates []string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}

func joinSorted(dates []string) string {
	uniq := make([]string, 0, len(dates))
	for d := range toSet(dates) {
		uniq = append(uniq, d)
	}
	sort.Strings(uniq)
	return strings.Join(uniq, " ")
}
