package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/racas/internal/pipeline"
)

// Version is reported in the JSON header.
var Version = "dev"

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	quiet      bool
	indent     bool
	outputFile string
	out        io.Writer
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(quiet bool, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		indent:     indent,
		outputFile: outputFile,
		out:        os.Stdout,
	}
}

// SetOutput redirects the report when no output file is set.
func (f *JSONFormatter) SetOutput(w io.Writer) {
	f.out = w
}

// Format formats the summary as JSON. In quiet mode only the summary block
// and the issues are included.
func (f *JSONFormatter) Format(summary *pipeline.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "racas",
			Version:   Version,
			Timestamp: summary.StartTime.Format(time.RFC3339),
		},
		Summary: JSONSummary{
			Profile:       summary.Profile,
			ProfileLabel:  summary.ProfileLabel,
			TotalBreeds:   len(summary.Breeds),
			TotalPages:    len(summary.Pages),
			ClientFile:    summary.ClientFile,
			TotalErrors:   summary.ErrorCount(),
			TotalWarnings: summary.WarningCount(),
			Duration:      summary.Duration.Round(time.Millisecond).String(),
		},
		Breeds: []JSONBreed{},
		Issues: []JSONValidationError{},
	}

	if !f.quiet {
		for _, b := range summary.Breeds {
			report.Breeds = append(report.Breeds, JSONBreed{
				Slug:      b.Slug,
				Nome:      b.Nome,
				Page:      b.Page,
				Atividade: jsonScore(b.Scores.Activity.Value, b.Scores.Activity.Facts, b.Scores.Activity.Text),
				Pelagem:   jsonScore(b.Scores.Grooming.Value, b.Scores.Grooming.Facts, b.Scores.Grooming.Text),
				Clima:     jsonScore(b.Scores.Climate.Value, b.Scores.Climate.Facts, b.Scores.Climate.Text),
			})
		}
		report.Pages = summary.Pages
	}

	for _, issue := range summary.Issues {
		report.Issues = append(report.Issues, JSONValidationError{
			File:     issue.File,
			Message:  issue.Message,
			Severity: issue.Severity,
			Path:     issue.Path,
		})
	}

	// Score texts carry inline HTML; keep it readable.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	// Write to file or stdout
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err := f.out.Write(buf.Bytes())
	return err
}

func jsonScore(value int, facts any, text string) JSONScore {
	return JSONScore{Valor: value, Facts: facts, Texto: text}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader            `json:"header"`
	Summary JSONSummary           `json:"summary"`
	Breeds  []JSONBreed           `json:"breeds"`
	Pages   []string              `json:"pages,omitempty"`
	Issues  []JSONValidationError `json:"issues"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	Profile       string `json:"profile,omitempty"`
	ProfileLabel  string `json:"profile_label,omitempty"`
	TotalBreeds   int    `json:"total_breeds"`
	TotalPages    int    `json:"total_pages"`
	ClientFile    string `json:"client_file,omitempty"`
	TotalErrors   int    `json:"total_errors"`
	TotalWarnings int    `json:"total_warnings"`
	Duration      string `json:"duration"`
}

// JSONBreed is the scored result of one breed.
type JSONBreed struct {
	Slug      string    `json:"slug"`
	Nome      string    `json:"nome"`
	Page      string    `json:"page"`
	Atividade JSONScore `json:"atividade"`
	Pelagem   JSONScore `json:"pelagem"`
	Clima     JSONScore `json:"clima"`
}

// JSONScore is one badge score with its facts.
type JSONScore struct {
	Valor int    `json:"valor"`
	Facts any    `json:"facts"`
	Texto string `json:"texto"`
}

// JSONValidationError represents a validation error
type JSONValidationError struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
}
