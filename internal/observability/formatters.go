// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/lead-scripter/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLeadInsights outputs a human-readable summary of the derived insights.
func (p *Printer) PrintLeadInsights(ins *types.Insights) {
	if ins == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", ins.Name))
	sb.WriteString(fmt.Sprintf("Role:        %s\n", ins.CurrentRole))
	sb.WriteString(fmt.Sprintf("Company:     %s\n", ins.CurrentCompany))
	sb.WriteString(fmt.Sprintf("Connections: %d\n", ins.ConnectionCount))
	sb.WriteString(fmt.Sprintf("Roles held:  %d\n", ins.ExperienceLevel))
	if len(ins.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:      %s\n", strings.Join(ins.Skills, ", ")))
	}
	if len(ins.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education:   %s", strings.Join(ins.Education, ", ")))
	}

	p.printBox("Lead Insights", strings.TrimRight(sb.String(), "\n"))
}

// PrintPersonalizationPoints outputs the derived talking points.
func (p *Printer) PrintPersonalizationPoints(points []string) {
	if len(points) == 0 {
		return
	}

	var sb strings.Builder
	for i, point := range points {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, point))
	}

	p.printBox("Personalization Points", sb.String())
}

// PrintProvenance outputs which data came from live services versus fallbacks.
func (p *Printer) PrintProvenance(company, profile types.Provenance) {
	content := fmt.Sprintf("Company data: %s\nProfile data: %s", company, profile)
	p.printBox("Data Provenance", content)
}
