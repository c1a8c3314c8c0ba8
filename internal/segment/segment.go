// Package segment splits raw document text into ordered comparison clauses.
package segment

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/clausematch/clausematch/internal/model"
)

// Segment splits decoded text into clauses. Lines are split first, then each
// line is split on sentence terminators ('.', with '!' and '?' normalized to
// '.'). Whitespace-only fragments are dropped, input order is preserved, and
// empty input yields an empty slice. Text is NFC-normalized so downstream
// fact extraction sees canonical composed forms.
func Segment(text string) []model.Clause {
	if text == "" {
		return nil
	}

	text = norm.NFC.String(text)

	var clauses []model.Clause
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, "?", ".")
		line = strings.ReplaceAll(line, "!", ".")
		for _, part := range strings.Split(line, ".") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			clauses = append(clauses, model.Clause{
				Index: len(clauses) + 1,
				Text:  part,
			})
		}
	}

	return clauses
}

// Texts returns just the clause texts, in order.
func Texts(clauses []model.Clause) []string {
	out := make([]string, len(clauses))
	for i, c := range clauses {
		out[i] = c.Text
	}
	return out
}
