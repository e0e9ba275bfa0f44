// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIngestion outputs a human-readable summary of an ingestion attempt.
func (p *Printer) PrintIngestion(snap ingestion.Snapshot) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("State:    %s\n", snap.State))
	switch snap.State {
	case ingestion.StateDone:
		words := len(strings.Fields(snap.Text))
		sb.WriteString(fmt.Sprintf("Words:    %d\n", words))
		for _, w := range snap.Warnings {
			sb.WriteString(fmt.Sprintf("Warning:  %s\n", w))
		}
	case ingestion.StateFailed:
		sb.WriteString(fmt.Sprintf("Category: %s\n", snap.Err.Category))
		sb.WriteString(fmt.Sprintf("Message:  %s\n", snap.Err.UserMessage()))
	}

	p.printBox("Ingestion", strings.TrimRight(sb.String(), "\n"))
}

// PrintCvData outputs a human-readable summary of the optimized resume.
func (p *Printer) PrintCvData(cv *types.CvData) {
	if cv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", cv.FullName))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", cv.ContactInfo.Email))
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(cv.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(cv.Education)))

	shown := cv.Skills
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	if len(shown) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:     %s", strings.Join(shown, ", ")))
		if len(cv.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(cv.Skills)-maxItemsToShow))
		}
	}

	p.printBox("Optimized CV", strings.TrimRight(sb.String(), "\n"))
}
