// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
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

// PrintJobInfo outputs a human-readable summary of the analyzed job posting.
func (p *Printer) PrintJobInfo(info *types.JobInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", info.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", info.Title))
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}
	sb.WriteString("\n")

	if len(info.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(info.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", info.Requirements[i]))
		}
		if len(info.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(info.Requirements)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(info.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(info.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", info.Skills[i]))
		}
		if len(info.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(info.Skills)-maxItemsToShow))
		}
	}

	p.printBox("ANALYZED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChanges outputs the per-field change records from a tailoring run.
func (p *Printer) PrintChanges(changes []types.ChangeRecord) {
	if len(changes) == 0 {
		p.printBox("TAILORING CHANGES", "No changes were made")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Made %d changes:\n\n", len(changes)))

	count := min(len(changes), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := changes[i]
		sb.WriteString(fmt.Sprintf("• %s.%s", c.Section, c.Field))
		if c.ItemIndex > 0 || c.Section == "experience" || c.Section == "projects" || c.Section == "education" {
			sb.WriteString(fmt.Sprintf("[%d]", c.ItemIndex))
		}
		sb.WriteString("\n")
		reason := c.Reason
		if len(reason) > 50 {
			reason = reason[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(changes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more changes", len(changes)-maxItemsToShow))
	}

	p.printBox("TAILORING CHANGES", sb.String())
}

// PrintSuggestions outputs improvement suggestions from a tailoring run.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		if len(s) > 50 {
			s = s[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// PrintTailorResult outputs the combined outcome of a tailoring run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTailorResult(result *types.TailorResult) {
	if result == nil {
		return
	}

	if !result.Success {
		var sb strings.Builder
		sb.WriteString("✗ Tailoring failed\n")
		errText := result.Error
		if len(errText) > 50 {
			errText = errText[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s", errText))
		p.printBox("TAILORING RESULT", sb.String())
		return
	}

	p.PrintChanges(result.Changes)
	p.PrintSuggestions(result.Suggestions)
}
