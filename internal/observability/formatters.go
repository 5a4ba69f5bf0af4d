// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/chalkbox/internal/types"
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

// RankedItem is one labelled entry of a ranking.
type RankedItem struct {
	Label  string
	Result types.SimilarityResult
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

// PrintProfile outputs the canonical skills and badges a profile is scored with.
func (p *Printer) PrintProfile(canonicalSkills []string, badges []types.BadgeTier) {
	var sb strings.Builder

	if len(canonicalSkills) == 0 {
		sb.WriteString("Skills:   (none recognized)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(canonicalSkills)))
		count := min(len(canonicalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", canonicalSkills[i]))
		}
		if len(canonicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(canonicalSkills)-maxItemsToShow))
		}
	}

	if len(badges) > 0 {
		names := make([]string, len(badges))
		for i, b := range badges {
			names[i] = string(b)
		}
		sb.WriteString(fmt.Sprintf("Badges:   %s\n", strings.Join(names, ", ")))
	}

	p.printBox("NORMALIZED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchBreakdown outputs how a score was reached.
func (p *Printer) PrintMatchBreakdown(b *types.MatchBreakdown) {
	if b == nil {
		return
	}

	boost := "none"
	if b.AppliedBoost != "" {
		boost = fmt.Sprintf("%s x%.2f", b.AppliedBoost, b.BadgeMultiplier)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Base similarity:  %.4f\n", b.BaseSimilarity))
	sb.WriteString(fmt.Sprintf("Badge boost:      %s\n", boost))
	sb.WriteString(fmt.Sprintf("Interaction:      x%.2f\n", b.InteractionMultiplier))
	sb.WriteString(fmt.Sprintf("Final score:      %.4f (%d%%)\n", b.Score, b.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Matched skills:   %s\n", joinOrDash(b.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("Missing skills:   %s", joinOrDash(b.MissingSkills)))

	p.printBox("MATCH BREAKDOWN", sb.String())
}

// PrintRanking outputs the top N ranked items with their match percentages.
func (p *Printer) PrintRanking(items []RankedItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total ranked: %d\n\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		label := item.Label
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %-40s %3d%%", i+1, label, item.Result.MatchPercentage))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more", len(items)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
