// Package extract pulls structured facts out of clause text with pattern
// rules. Extraction is deterministic and makes no external calls.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/clausematch/clausematch/internal/model"
)

// FactExtractor extracts money, date and number facts from clause text.
type FactExtractor struct {
	money  *regexp.Regexp
	date   *regexp.Regexp
	number *regexp.Regexp
}

// NewFactExtractor creates a fact extractor with the built-in patterns.
func NewFactExtractor() *FactExtractor {
	return &FactExtractor{
		money:  regexp.MustCompile(`(?i)(€|eur|euro[s]?)\s*([\d\s.,]+)`),
		date:   regexp.MustCompile(`(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})`),
		number: regexp.MustCompile(`\b\d[\d\s.,]*\b`),
	}
}

// Extract returns the facts found in text. A clause with no recognizable
// facts yields a FactSet with empty lists, never an error.
func (e *FactExtractor) Extract(text string) model.FactSet {
	facts := model.FactSet{
		Money:   []model.Money{},
		Dates:   []string{},
		Numbers: []string{},
	}

	for _, m := range e.money.FindAllStringSubmatch(text, -1) {
		facts.Money = append(facts.Money, model.Money{
			Currency:    normalizeCurrency(m[1]),
			AmountMinor: ToMinor(m[2]),
		})
	}

	for _, d := range e.date.FindAllStringSubmatch(text, -1) {
		year, _ := strconv.Atoi(d[1])
		month, _ := strconv.Atoi(d[2])
		day, _ := strconv.Atoi(d[3])
		facts.Dates = append(facts.Dates, fmt.Sprintf("%04d-%02d-%02d", year, month, day))
	}

	for _, n := range e.number.FindAllString(text, -1) {
		val := strings.ReplaceAll(n, " ", "")
		val = strings.ReplaceAll(val, ",", "")
		facts.Numbers = append(facts.Numbers, val)
	}

	return facts
}

// normalizeCurrency maps the matched marker to an ISO-like code: EUR for the
// euro sign or any marker starting with "eu", otherwise the marker uppercased.
func normalizeCurrency(marker string) string {
	up := strings.ToUpper(marker)
	if strings.HasPrefix(up, "€") || strings.HasPrefix(up, "EU") {
		return "EUR"
	}
	return up
}

// ToMinor converts a raw amount string to minor currency units. Spaces and
// commas are stripped; with a remaining '.' the left part is major units and
// the right part, padded or truncated to exactly two digits, is minor units.
// Without a '.' the whole value is major units.
func ToMinor(amount string) int64 {
	cleaned := strings.ReplaceAll(amount, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if i := strings.Index(cleaned, "."); i >= 0 {
		major := parseInt(cleaned[:i])
		minorRaw := cleaned[i+1:] + "00"
		minor := parseInt(minorRaw[:2])
		return major*100 + minor
	}
	return parseInt(cleaned) * 100
}

// parseInt treats empty or unparseable digit runs as zero, mirroring the
// forgiving behavior of the rule patterns.
func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
