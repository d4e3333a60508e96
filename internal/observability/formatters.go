// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSegmentsToShow is the default number of classified segments to display
	maxSegmentsToShow = 5
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

// PrintRunResult outputs a human-readable summary of a completed run.
func (p *Printer) PrintRunResult(result *types.RunResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Channel:   %s\n", result.ChannelTitle))
	sb.WriteString(fmt.Sprintf("Analyzed:  %d of %d videos\n", result.VideosAnalyzed, result.VideosTotal))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Crowdwork: %5.1f%%  (%.0fs)\n", result.CrowdworkPercentage, result.CrowdworkDuration))
	sb.WriteString(fmt.Sprintf("Material:  %5.1f%%  (%.0fs)\n", result.MaterialPercentage, result.MaterialDuration))

	if len(result.Videos) > 0 {
		sb.WriteString("\nPer video:\n")
		for _, v := range result.Videos {
			sb.WriteString(fmt.Sprintf("  • %s — %.1f%% crowdwork\n", v.Title, v.CrowdworkPercentage))
		}
	}

	p.printBox("Crowdwork Analysis", sb.String())
}

// PrintAnalysis outputs the first classified segments of one transcript.
func (p *Printer) PrintAnalysis(analysis *types.TranscriptAnalysis) {
	if analysis == nil || len(analysis.Classifications) == 0 {
		return
	}

	var sb strings.Builder
	count := len(analysis.Classifications)
	if count > maxSegmentsToShow {
		count = maxSegmentsToShow
	}
	for i := 0; i < count; i++ {
		c := analysis.Classifications[i]
		label := "material"
		if c.IsCrowdwork {
			label = "crowdwork"
		}
		sb.WriteString(fmt.Sprintf("[%6.1fs] %-9s %.2f  %s\n", c.StartTime, label, c.Confidence, c.Text))
	}
	if len(analysis.Classifications) > count {
		sb.WriteString(fmt.Sprintf("... and %d more segments\n", len(analysis.Classifications)-count))
	}

	p.printBox("Segment Classifications", sb.String())
}
