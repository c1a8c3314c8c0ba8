package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/clausematch/clausematch/internal/model"
)

// Renderer writes comparison reports as JSON, Markdown or HTML.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report.
func (r *Renderer) RenderMarkdown(rep *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# ClauseMatch Report\n\n")
	if rep.SourceA != "" || rep.SourceB != "" {
		fmt.Fprintf(&b, "Comparing `%s` against `%s`.\n\n", rep.SourceA, rep.SourceB)
	}

	fmt.Fprintf(&b, "**OK:** %d  **REVIEW:** %d  **MISMATCH:** %d\n\n",
		rep.Summary.OK, rep.Summary.Review, rep.Summary.Mismatch)
	fmt.Fprintf(&b, "Pairs: %d, lexical mismatches: %d, average similarity: %.3f\n\n",
		rep.Similarity.Total, rep.Similarity.Mismatches, rep.Similarity.AvgSimilarity)

	if rep.Classifier != nil && rep.Classifier.Enabled {
		fmt.Fprintf(&b, "Semantic checks by %s/%s.\n\n", rep.Classifier.Provider, rep.Classifier.Model)
	}

	b.WriteString("## Findings\n\n")
	b.WriteString("| Clause | Field | Status | Risk | Confidence | Rationale |\n")
	b.WriteString("|--------|-------|--------|------|------------|----------|\n")
	for _, f := range rep.Findings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %.2f | %s |\n",
			f.ClauseKey, f.Field, f.Status, f.Risk, f.Confidence, escapePipes(f.Rationale))
	}

	if r.includeFooter {
		b.WriteString("\n---\nGenerated by ClauseMatch. Rule findings are deterministic; semantic findings are best-effort classifier output.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

var htmlTemplate = template.Must(template.New("report").Parse(`<html><body>
<h1>ClauseMatch Report</h1>
<p>OK: {{.Summary.OK}} REVIEW: {{.Summary.Review}} MISMATCH: {{.Summary.Mismatch}}</p>
<p>Pairs: {{.Similarity.Total}} &middot; avg similarity {{printf "%.3f" .Similarity.AvgSimilarity}}</p>
<table border='1' cellspacing='0' cellpadding='4'>
<tr><th>Clause</th><th>Status</th><th>Field</th><th>Risk</th><th>Confidence</th><th>Rationale</th></tr>
{{range .Findings}}<tr><td>{{.ClauseKey}}</td><td>{{.Status}}</td><td>{{.Field}}</td><td>{{.Risk}}</td><td>{{printf "%.2f" .Confidence}}</td><td>{{.Rationale}}</td></tr>
{{end}}</table>
</body></html>
`))

// RenderHTML renders the report as a single HTML page. Finding tables are
// capped at 200 rows to keep the page reviewable.
func (r *Renderer) RenderHTML(rep *model.Report) (string, error) {
	capped := *rep
	if len(capped.Findings) > 200 {
		capped.Findings = capped.Findings[:200]
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, &capped); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}

// RenderHTMLFile writes the HTML report to path.
func (r *Renderer) RenderHTMLFile(rep *model.Report, path string) error {
	html, err := r.RenderHTML(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout.
func (r *Renderer) RenderSummary(rep *model.Report) {
	fmt.Printf("\nClauseMatch: %d pairs compared\n", rep.Similarity.Total)
	fmt.Printf("  OK:        %d\n", rep.Summary.OK)
	fmt.Printf("  REVIEW:    %d\n", rep.Summary.Review)
	fmt.Printf("  MISMATCH:  %d\n", rep.Summary.Mismatch)
	fmt.Printf("  Avg similarity: %.3f\n", rep.Similarity.AvgSimilarity)

	high := 0
	for _, f := range rep.Findings {
		if f.Risk == model.RiskHigh {
			high++
		}
	}
	if high > 0 {
		fmt.Printf("  ⚠ %d high-risk finding(s)\n", high)
	}
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
