// Package output renders a pipeline summary as a console, JSON or Markdown
// report.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/racas/internal/pipeline"
	"github.com/dotcommander/racas/internal/scoring"
	"github.com/dotcommander/racas/internal/types"
)

// Column widths of the score table.
const (
	nameWidth  = 28
	scoreWidth = 12
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to stdout.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	f := &ConsoleFormatter{quiet: quiet, verbose: verbose}
	f.SetOutput(os.Stdout)
	return f
}

// SetOutput redirects the report. Colors follow the writer's capabilities.
func (f *ConsoleFormatter) SetOutput(w io.Writer) {
	f.out = w
	f.renderer = lipgloss.NewRenderer(w)
}

// Format prints the score table, the issues and a one-line summary.
func (f *ConsoleFormatter) Format(summary *pipeline.Summary) error {
	if f.quiet {
		// Only show issues in quiet mode
		f.printIssues(summary.Issues)
		return nil
	}

	f.printHeader(summary)
	f.printBreeds(summary)
	f.printIssues(summary.Issues)
	f.printSummary(summary)
	f.printConclusion(summary)
	return nil
}

func (f *ConsoleFormatter) color(c string) lipgloss.Style {
	return f.renderer.NewStyle().Foreground(lipgloss.Color(c))
}

func (f *ConsoleFormatter) printHeader(summary *pipeline.Summary) {
	if summary.Profile == "" {
		return
	}
	bold := f.renderer.NewStyle().Bold(true)
	fmt.Fprintf(f.out, "%s %s\n\n", bold.Render("Perfil:"), summary.ProfileLabel)
}

// printBreeds prints one row per breed with the three badge scores.
func (f *ConsoleFormatter) printBreeds(summary *pipeline.Summary) {
	if len(summary.Breeds) == 0 {
		return
	}

	head := f.renderer.NewStyle().Bold(true).Width(scoreWidth)
	fmt.Fprintf(f.out, "%s%s%s%s\n",
		f.renderer.NewStyle().Bold(true).Width(nameWidth).Render("Raça"),
		head.Render("Atividade"), head.Render("Pelagem"), head.Render("Clima"))

	cell := f.renderer.NewStyle().Width(scoreWidth)
	for _, b := range summary.Breeds {
		fmt.Fprintf(f.out, "%s%s%s%s\n",
			f.renderer.NewStyle().Width(nameWidth).Render(truncate(b.Nome, nameWidth-2)),
			cell.Render(f.scoreBar(b.Scores.Activity.Value)),
			cell.Render(f.scoreBar(b.Scores.Grooming.Value)),
			cell.Render(f.scoreBar(b.Scores.Climate.Value)))
		if f.verbose {
			f.printFacts(b.Scores)
		}
	}
	fmt.Fprintln(f.out)
}

// scoreBar renders a 0-5 score as filled and empty dots.
func (f *ConsoleFormatter) scoreBar(value int) string {
	var c string
	switch {
	case value >= 4:
		c = "10" // green
	case value >= 2:
		c = "3" // yellow
	default:
		c = "8" // dim
	}
	bar := strings.Repeat("●", value) + strings.Repeat("○", scoring.MaxScore-value)
	return f.color(c).Render(bar) + fmt.Sprintf(" %d", value)
}

func (f *ConsoleFormatter) printFacts(s scoring.BreedScores) {
	dim := f.color("8")
	a, g, c := s.Activity.Facts, s.Grooming.Facts, s.Climate.Facts
	lines := []string{
		fmt.Sprintf("atividade: intensidade %d, duração %d (%s), estímulo mental %d",
			a.Intensidade, a.Duracao, a.DuracaoTxt, a.EstimuloMental),
		fmt.Sprintf("pelagem: escovação %d (%s), queda %d, tosa %d",
			g.Escovacao, g.EscovacaoTxt, g.Shedding, g.Tosa),
		fmt.Sprintf("clima: calor %d, umidade %d, espaço %.1f (%s)",
			c.Calor, c.Umidade, c.Espaco, c.AdaptacaoEspacoTxt),
	}
	if len(a.Sugestoes) > 0 {
		lines = append(lines, "sugestões: "+strings.Join(a.Sugestoes, "; "))
	}
	for _, line := range lines {
		fmt.Fprintf(f.out, "    %s\n", dim.Render(line))
	}
}

// printIssues prints validation issues with severity styling.
func (f *ConsoleFormatter) printIssues(issues []types.ValidationError) {
	for _, issue := range issues {
		f.printValidationError(issue)
	}
	if len(issues) > 0 && !f.quiet {
		fmt.Fprintln(f.out)
	}
}

// printValidationError prints a validation error with appropriate styling
func (f *ConsoleFormatter) printValidationError(issue types.ValidationError) {
	var style lipgloss.Style
	prefix := "  "
	switch issue.Severity {
	case types.SeverityError:
		style = f.color("9") // red
		prefix = "  ✘ "
	case types.SeverityWarning:
		style = f.color("3") // yellow
		prefix = "  ⚠ "
	default:
		style = f.color("7") // gray
	}

	if issue.Path != "" {
		fmt.Fprintf(f.out, "%s%s: %s: %s\n", prefix, style.Render(issue.File), issue.Path, issue.Message)
	} else {
		fmt.Fprintf(f.out, "%s%s: %s\n", prefix, style.Render(issue.File), issue.Message)
	}
}

// printSummary prints the counts line
func (f *ConsoleFormatter) printSummary(summary *pipeline.Summary) {
	parts := []string{plural(len(summary.Breeds), "raça", "raças")}
	if len(summary.Pages) > 0 {
		parts = append(parts, plural(len(summary.Pages), "página", "páginas"))
	}
	if summary.ClientFile != "" {
		parts = append(parts, "cliente: "+summary.ClientFile)
	}
	if n := summary.ErrorCount(); n > 0 {
		parts = append(parts, plural(n, "erro", "erros"))
	}
	if n := summary.WarningCount(); n > 0 {
		parts = append(parts, plural(n, "aviso", "avisos"))
	}
	fmt.Fprintf(f.out, "%s (%v)\n", strings.Join(parts, ", "), summary.Duration.Round(time.Millisecond))
}

// printConclusion prints the conclusion message
func (f *ConsoleFormatter) printConclusion(summary *pipeline.Summary) {
	if summary.HasErrors() {
		style := f.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		fmt.Fprintf(f.out, "%s\n", style.Render("✗ "+plural(summary.ErrorCount(), "erro encontrado", "erros encontrados")))
		return
	}
	style := f.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fmt.Fprintf(f.out, "%s\n", style.Render("✓ Concluído"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
