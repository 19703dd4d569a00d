package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/racas/internal/pipeline"
	"github.com/dotcommander/racas/internal/types"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
	out        io.Writer
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
		out:        os.Stdout,
	}
}

// SetOutput redirects the report when no output file is set.
func (f *MarkdownFormatter) SetOutput(w io.Writer) {
	f.out = w
}

// Format formats the summary as Markdown
func (f *MarkdownFormatter) Format(summary *pipeline.Summary) error {
	var builder strings.Builder

	// Header
	builder.WriteString("# Racas Build Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", summary.StartTime.Format("2006-01-02 15:04:05")))
	if summary.Profile != "" {
		builder.WriteString(fmt.Sprintf("**Profile:** %s\n\n", summary.ProfileLabel))
	}
	builder.WriteString(fmt.Sprintf("**Duration:** %v\n\n", summary.Duration.Round(time.Millisecond)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	// Summary Table
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Breeds | %d |\n", len(summary.Breeds)))
	builder.WriteString(fmt.Sprintf("| Pages | %d |\n", len(summary.Pages)))
	builder.WriteString(fmt.Sprintf("| Errors | %d |\n", summary.ErrorCount()))
	builder.WriteString(fmt.Sprintf("| Warnings | %d |\n", summary.WarningCount()))
	builder.WriteString("\n")
	if summary.ClientFile != "" {
		builder.WriteString(fmt.Sprintf("Client payload: `%s`\n\n", summary.ClientFile))
	}

	if !f.quiet && len(summary.Breeds) > 0 {
		builder.WriteString("## Scores\n\n")
		builder.WriteString("| Raça | Atividade | Pelagem | Clima |\n")
		builder.WriteString("|------|-----------|---------|-------|\n")
		for _, b := range summary.Breeds {
			builder.WriteString(fmt.Sprintf("| [%s](%s) | %d | %d | %d |\n",
				escapeCell(b.Nome), b.Page,
				b.Scores.Activity.Value, b.Scores.Grooming.Value, b.Scores.Climate.Value))
		}
		builder.WriteString("\n")

		if f.verbose {
			builder.WriteString("## Details\n\n")
			for _, b := range summary.Breeds {
				builder.WriteString(fmt.Sprintf("### %s\n\n", b.Nome))
				builder.WriteString(fmt.Sprintf("- **Atividade:** %s\n", b.Scores.Activity.Text))
				builder.WriteString(fmt.Sprintf("- **Pelagem:** %s\n", b.Scores.Grooming.Text))
				builder.WriteString(fmt.Sprintf("- **Clima:** %s\n\n", b.Scores.Climate.Text))
			}
		}
	}

	writeIssues(&builder, "Errors", summary.Issues, types.SeverityError)
	writeIssues(&builder, "Warnings", summary.Issues, types.SeverityWarning)

	// Conclusion
	builder.WriteString("## Conclusion\n\n")
	if summary.HasErrors() {
		builder.WriteString(fmt.Sprintf("✗ %d errors found\n", summary.ErrorCount()))
	} else {
		builder.WriteString("✓ Build completed without errors\n")
	}

	// Write to file or stdout
	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err := io.WriteString(f.out, content)
	return err
}

func writeIssues(b *strings.Builder, title string, issues []types.ValidationError, severity string) {
	var lines []string
	for _, issue := range issues {
		if issue.Severity != severity {
			continue
		}
		line := fmt.Sprintf("- **%s** - %s", issue.File, issue.Message)
		if issue.Path != "" {
			line += fmt.Sprintf(" (`%s`)", issue.Path)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("## " + title + "\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}

// escapeCell escapes pipes inside a table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
