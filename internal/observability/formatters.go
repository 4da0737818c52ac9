// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for human-readable CLI mode.
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

// PrintJobs outputs a human-readable summary of aggregated search results.
func (p *Printer) PrintJobs(jobs []types.Job) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs found: %d\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, job.Title))
		sb.WriteString(fmt.Sprintf("    %s, %s\n", job.Company, job.Location))
		sb.WriteString(fmt.Sprintf("    Source: %s", job.Source))
		if job.Remote {
			sb.WriteString(" (remote)")
		}
		sb.WriteString("\n")
		if job.Salary != "" {
			sb.WriteString(fmt.Sprintf("    Salary: %s\n", job.Salary))
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("JOB SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs scored matches with reasons and skill overlap.
func (p *Printer) PrintMatches(matches []types.JobMatch) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s at %s\n", i+1, m.Job.Title, m.Job.Company))
		sb.WriteString(fmt.Sprintf("    Score: %d/100 - %s\n", m.MatchScore, m.MatchReason))
		if len(m.MatchedSkills) > 0 {
			skills := strings.Join(m.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", skills))
		}
		if len(m.MissingSkills) > 0 {
			skills := strings.Join(m.MissingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
