package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/unitcheck/unitcheck/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	gapTagStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// Fixed display order for the status blocks (maps do not preserve it).
var (
	ruleOrder      = []string{domain.RuleValidity, domain.RuleSufficiency, domain.RuleAuthenticity, domain.RuleCurrency}
	principleOrder = []string{domain.PrincipleFairness, domain.PrincipleFlexibility, domain.PrincipleValidity, domain.PrincipleReliability}
)

// RenderValidation renders a full validation run: header, one section per
// unit report, and a detection summary.
func RenderValidation(result *domain.ValidationResult) string {
	var b strings.Builder

	title := headerStyle.Render("unitcheck")
	subtitle := dimStyle.Render("Assessment Coverage Report")
	doc := ""
	if result.Document != "" {
		doc = "\n" + dimStyle.Render(result.Document)
	}
	if result.CommitHash != "" {
		doc += "\n" + faintStyle.Render("@ "+shortHash(result.CommitHash))
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + doc))
	b.WriteString("\n\n")

	if len(result.DetectedCodes) > 0 {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("Detected units: %s", strings.Join(result.DetectedCodes, ", "))))
		b.WriteString("\n\n")
	}

	for i, report := range result.Collection.Reports {
		renderReport(&b, report)
		if i < len(result.Collection.Reports)-1 {
			b.WriteString("\n  " + separatorLine + "\n\n")
		}
	}

	return b.String()
}

// RenderReport renders a single unit report as a styled TUI string.
func RenderReport(report domain.UnitReport) string {
	var b strings.Builder
	renderReport(&b, report)
	return b.String()
}

func renderReport(b *strings.Builder, report domain.UnitReport) {
	// Unit header with verdict.
	verdict := domain.VerdictFor(report)
	verdictStyled := verdictStyle(report).Render(verdict)
	b.WriteString("  " + titleStyle.Render(report.Unit.Code))
	if report.Unit.Title != "" {
		b.WriteString("  " + dimStyle.Render(report.Unit.Title))
	}
	b.WriteString("\n  " + verdictStyled + "\n\n")

	// Coverage bars.
	renderCoverageLine(b, "Performance criteria", report.Coverage.PerformanceCriteria)
	renderCoverageLine(b, "Knowledge evidence", report.Coverage.Knowledge)
	b.WriteString("\n")

	// Status blocks.
	b.WriteString("  " + titleStyle.Render("Rules of Evidence") + "\n")
	renderStatusBlock(b, report.RulesOfEvidence, ruleOrder)
	b.WriteString("\n  " + titleStyle.Render("Principles of Assessment") + "\n")
	renderStatusBlock(b, report.PrinciplesOfAssessment, principleOrder)

	// Gaps.
	if len(report.Gaps) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Gaps") + "  " +
			gapTagStyle.Render(fmt.Sprintf("%d", len(report.Gaps))) + "\n\n")
		for _, gap := range report.Gaps {
			renderGap(b, gap)
		}
	} else {
		b.WriteString("\n  " + passStyle.Render("No gaps identified.") + "\n")
	}
}

func renderCoverageLine(b *strings.Builder, label string, cov domain.CoverageResult) {
	bar := renderBar(cov.Percentage)
	counts := faintStyle.Render(fmt.Sprintf("%d/%d", cov.Assessed, cov.Total))
	b.WriteString(fmt.Sprintf("  %-22s %s %3d%%  %s\n", label, bar, cov.Percentage, counts))
}

// renderBar draws a 20-cell progress bar colored by percentage.
func renderBar(percentage int) string {
	const width = 20
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}

	style := failStyle
	switch {
	case percentage >= domain.DisplaySufficiencyGood:
		style = passStyle
	case percentage >= 70:
		style = warnStyle
	}

	return style.Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", width-filled))
}

func renderStatusBlock(b *strings.Builder, block map[string]domain.RuleStatus, order []string) {
	for _, name := range order {
		entry, ok := block[name]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %-14s %s\n",
			statusGlyph(entry.Status), name, dimStyle.Render(fmt.Sprintf("%d", entry.Score))))
	}
}

func renderGap(b *strings.Builder, gap domain.Gap) {
	glyph := gapTagStyle.Render("●")
	if gap.Type == domain.GapImprovement {
		glyph = warnStyle.Render("●")
	}
	b.WriteString(fmt.Sprintf("    %s %s  %s\n", glyph, titleStyle.Render(gap.Element),
		faintStyle.Render(gap.Priority)))
	b.WriteString("      " + dimStyle.Render(gap.Description) + "\n")
	b.WriteString("      " + hintStyle.Render(gap.Recommendation) + "\n")
}

func statusGlyph(status string) string {
	switch status {
	case domain.StatusPass:
		return passStyle.Render("✓")
	case domain.StatusWarning:
		return warnStyle.Render("!")
	default:
		return failStyle.Render("✗")
	}
}

func verdictStyle(report domain.UnitReport) lipgloss.Style {
	validity := report.RulesOfEvidence[domain.RuleValidity].Score
	sufficiency := report.RulesOfEvidence[domain.RuleSufficiency].Score
	switch {
	case sufficiency >= domain.DisplaySufficiencyGood && validity >= domain.DisplayValidityGood:
		return passStyle
	case sufficiency >= 75 || validity >= 70:
		return warnStyle
	default:
		return failStyle
	}
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
