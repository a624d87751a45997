// Package renderer turns aggregated ledger figures into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// Stats is the display-ready model for the statistics report. All monetary
// values are preformatted strings in the active currency.
type Stats struct {
	Currency    string
	Total       string
	Days        []DayRow
	TopCategory string
	TopShare    int
	Budget      BudgetRow
}

// DayRow is one line of the last-7-days table.
type DayRow struct {
	Date  string
	Total string
	Bar   string
}

// BudgetRow describes the budget section. An empty Status hides it.
type BudgetRow struct {
	Status  string
	Percent int
	Cap     string
}

// StatsMarkdown renders the statistics report to a markdown string.
func StatsMarkdown(s *Stats) string {
	return renderTemplate("stats", "stats.md", s)
}

// renderTemplate renders one embedded template with the given data. A
// template error is rendered into the output rather than failing the
// report.
func renderTemplate(name, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

// Bar renders a proportional text bar for a day's total against the week's
// maximum, for terminals where a chart is a row of blocks.
func Bar(total, max float64, width int) string {
	if max <= 0 || total <= 0 || width <= 0 {
		return ""
	}
	n := int(total / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}
