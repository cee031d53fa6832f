package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/scoring"
)

// ── warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
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

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	highTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	medTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	lowTagStyle  = lipgloss.NewStyle().Foreground(info)
	aiTagStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// quotedIdentifier matches the identifier linters quote in naming
// messages, e.g. "Invalid name 'myVar'".
var quotedIdentifier = regexp.MustCompile(`'([A-Za-z_][A-Za-z0-9_]*)'`)

// RenderReport formats a full analysis report for terminal output.
func RenderReport(report *domain.Report, fileType domain.FileType) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("lintgrade")
	subtitle := dimStyle.Render("Code Quality Score")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%s / 100", formatScore(report.TotalScore)))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	weights := domain.DefaultWeights()
	for _, cat := range domain.Categories {
		renderCategory(&b, cat, report, weights.MaxScore[cat])
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Recommendations ──
	if len(report.Recommendations) > 0 {
		b.WriteString("  " + titleStyle.Render("Recommendations") + "\n\n")
		for _, rec := range report.Recommendations {
			renderRecommendation(&b, rec, fileType)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	renderAIStatus(&b, report.AIAnalysis)

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, cat domain.Category, report *domain.Report, maxScore float64) {
	score := report.CategoryScores[cat]
	pct := 0
	if maxScore > 0 {
		pct = int(score / maxScore * 100)
	}

	name := catNameStyle.Render(padRight(string(cat), 22))
	bar := coloredBar(pct, 20)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(pct)).
		Render(fmt.Sprintf("%s/%s", formatScore(score), formatScore(maxScore)))

	count := report.DetailedAnalysis[cat].ViolationCount
	detail := ""
	if count > 0 {
		detail = "  " + dimStyle.Render(fmt.Sprintf("%d violations", count))
	}

	fmt.Fprintf(b, "  %s %s  %s%s\n", name, bar, scoreText, detail)
}

func renderRecommendation(b *strings.Builder, rec domain.Recommendation, fileType domain.FileType) {
	tag := priorityTag(rec.Priority)
	source := ""
	if rec.Source == domain.SourceAI {
		source = " " + aiTagStyle.Render("AI")
	}

	fmt.Fprintf(b, "    %s%s %s\n", tag, source, titleStyle.Render(rec.Category))
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(rec.Suggestion))
	if rec.ExampleViolation != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render("e.g. "+rec.ExampleViolation))
	}
	if hint := identifierHint(rec, fileType); hint != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render(hint))
	}
	b.WriteString("\n")
}

// identifierHint turns a naming violation's quoted identifier into a
// concrete rename suggestion for the file's naming style.
func identifierHint(rec domain.Recommendation, fileType domain.FileType) string {
	if rec.Category != string(domain.NamingConventions) {
		return ""
	}
	m := quotedIdentifier.FindStringSubmatch(rec.ExampleViolation)
	if m == nil {
		return ""
	}
	suggested := scoring.SuggestIdentifier(m[1], fileType)
	if suggested == "" || suggested == m[1] {
		return ""
	}
	return fmt.Sprintf("hint: rename '%s' to '%s'", m[1], suggested)
}

func renderAIStatus(b *strings.Builder, ai *domain.AIAnalysis) {
	if ai == nil {
		return
	}
	switch ai.Status {
	case domain.AIStatusSuccess:
		b.WriteString("  " + titleStyle.Render("AI Review") + "  " + passStyle.Render("success") + "\n")
	case domain.AIStatusError:
		fmt.Fprintf(b, "  %s  %s  %s\n",
			titleStyle.Render("AI Review"),
			highTagStyle.Render("error"),
			dimStyle.Render(ai.Message))
	default:
		fmt.Fprintf(b, "  %s  %s\n",
			titleStyle.Render("AI Review"),
			dimStyle.Render("skipped: "+ai.Message))
	}
}

func priorityTag(priority string) string {
	switch priority {
	case domain.PriorityHigh:
		return highTagStyle.Render("HIGH  ")
	case domain.PriorityMedium:
		return medTagStyle.Render("MEDIUM")
	default:
		return lowTagStyle.Render("LOW   ")
	}
}

func coloredBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(scoreColor(pct)).Render(bar)
}

func scoreColor(pct int) lipgloss.Color {
	switch {
	case pct >= 80:
		return success
	case pct >= 60:
		return lipgloss.Color("#A3E635") // lime
	case pct >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

// formatScore prints whole scores without a decimal point and fractional
// ones with a single digit.
func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
