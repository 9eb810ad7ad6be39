// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs a human-readable summary of the summarized
// profile the pipeline will score against.
func (p *Printer) PrintProfileSummary(summary *types.SummarizedProfile) {
	if summary == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:       %s\n", summary.CurrentRole))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", summary.YearsExperience))
	sb.WriteString("\n")

	if len(summary.TechnicalSkills) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(summary.TechnicalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := summary.TechnicalSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill.Name))
			if skill.Level != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", skill.Level))
			}
			sb.WriteString("\n")
		}
		if len(summary.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.TechnicalSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(summary.Interests) > 0 {
		sb.WriteString("Interests:\n")
		count := min(len(summary.Interests), maxItemsToShow)
		for i := 0; i < count; i++ {
			interest := summary.Interests[i]
			sb.WriteString(fmt.Sprintf("  • %s", interest.Name))
			if interest.Level != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", interest.Level))
			}
			sb.WriteString("\n")
		}
	}

	if !summary.Salary.IsZero() {
		sb.WriteString(fmt.Sprintf("\nSalary expectation: %.0f - %.0f %s\n",
			summary.Salary.Min, summary.Salary.Max, summary.Salary.Currency))
	}

	p.printBox("USER PROFILE SUMMARY", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendations outputs a compact ranked view of the recommendation
// list with zone and score per entry.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		p.printBox("RECOMMENDATIONS", "No recommendations produced")
		return
	}

	var sb strings.Builder

	counts := map[types.Category]int{}
	for _, recommendation := range recommendations {
		counts[recommendation.Category]++
	}
	sb.WriteString(fmt.Sprintf("Safe: %d  Stretch: %d  Adventure: %d\n\n",
		counts[types.CategorySafe], counts[types.CategoryStretch], counts[types.CategoryAdventure]))

	for i, recommendation := range recommendations {
		sb.WriteString(fmt.Sprintf("%2d. [%s] %s (%.2f)\n",
			i+1, recommendation.Category, recommendation.Career.Title, recommendation.Score.Total))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimRight(sb.String(), "\n"))
}
