// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for analysis results
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

// PrintResult outputs the overall score and the factor breakdown.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", result.ExtractedRole))
	sb.WriteString(fmt.Sprintf("Overall:  %d", result.OverallScore))
	if result.WeightsScaled {
		sb.WriteString(" (scaled; weights do not sum to 100)")
	} else {
		sb.WriteString("%")
	}
	sb.WriteString("\n\n")

	for _, factor := range result.Factors {
		sb.WriteString(fmt.Sprintf("%-18s %3d%%", factor.Name, factor.Score))
		if factor.TotalCount > 0 {
			sb.WriteString(fmt.Sprintf("  (%d/%d)", factor.MatchedCount, factor.TotalCount))
		}
		sb.WriteString("\n")
	}

	p.printBox("FIT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFactorDetails outputs per-factor explanations for verbose mode.
func (p *Printer) PrintFactorDetails(result *types.AnalysisResult) {
	if result == nil || len(result.Factors) == 0 {
		return
	}

	var sb strings.Builder
	for i, factor := range result.Factors {
		sb.WriteString(fmt.Sprintf("%s (%d%%)\n", factor.Name, factor.Score))
		if factor.Explanation.Yours != "" {
			sb.WriteString(fmt.Sprintf("  Yours: %s\n", factor.Explanation.Yours))
		}
		if factor.Explanation.Job != "" {
			sb.WriteString(fmt.Sprintf("  Job:   %s\n", factor.Explanation.Job))
		}
		sb.WriteString(fmt.Sprintf("  Why:   %s\n", factor.Explanation.Why))
		if i < len(result.Factors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FACTOR DETAILS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGuidance outputs the tier-based advice for the result.
func (p *Printer) PrintGuidance(guidance types.Guidance) {
	var sb strings.Builder

	switch guidance.Tier {
	case types.TierStrongFit:
		sb.WriteString("Strong fit.\n\n")
		sb.WriteString(guidance.Pitch)
		sb.WriteString("\n")
		if guidance.PitchNote != "" {
			sb.WriteString(fmt.Sprintf("\n(%s)", guidance.PitchNote))
		}
	case types.TierModerateFit:
		sb.WriteString(guidance.Reason)
		sb.WriteString("\n")
		count := min(len(guidance.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", guidance.Gaps[i]))
		}
		if len(guidance.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(guidance.Gaps)-maxItemsToShow))
		}
		if guidance.NextStep != "" {
			sb.WriteString(fmt.Sprintf("\n%s", guidance.NextStep))
		}
	default:
		if len(guidance.MissingInputs) > 0 {
			sb.WriteString("Score limited by missing information:\n")
			for _, input := range guidance.MissingInputs {
				sb.WriteString(fmt.Sprintf("  • %s\n", input))
			}
		} else {
			sb.WriteString(guidance.Reason)
			sb.WriteString("\n")
			if guidance.NextStep != "" {
				sb.WriteString(guidance.NextStep)
				sb.WriteString("\n")
			}
		}
	}

	p.printBox("GUIDANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAlerts outputs missing-data alerts, or a confirmation when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAlerts(alerts []string) {
	if len(alerts) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO MISSING DATA")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d alerts:\n\n", len(alerts)))

	for i, alert := range alerts {
		if len(alert) > 50 {
			alert = alert[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", alert))
		if i < len(alerts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MISSING DATA ALERTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSemantic outputs the optional LLM supplement when present.
func (p *Printer) PrintSemantic(semantic *types.SemanticAnalysis) {
	if semantic == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill match:      %d%%\n", semantic.SkillMatch.MatchScore))
	sb.WriteString(fmt.Sprintf("Experience match: %d%%\n", semantic.ExperienceMatch.Score))
	if semantic.ExperienceMatch.Explanation != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", semantic.ExperienceMatch.Explanation))
	}

	if len(semantic.SkillMatch.Transferable) > 0 {
		sb.WriteString("\nTransferable skills:\n")
		count := min(len(semantic.SkillMatch.Transferable), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", semantic.SkillMatch.Transferable[i]))
		}
		if len(semantic.SkillMatch.Transferable) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(semantic.SkillMatch.Transferable)-maxItemsToShow))
		}
	}

	if len(semantic.SkillMatch.Missing) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(semantic.SkillMatch.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", semantic.SkillMatch.Missing[i]))
		}
		if len(semantic.SkillMatch.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(semantic.SkillMatch.Missing)-maxItemsToShow))
		}
	}

	p.printBox("SEMANTIC SUPPLEMENT", strings.TrimSuffix(sb.String(), "\n"))
}
