package outputters

import (
	"errors"
	"fmt"
	"time"

	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/output"
	"github.com/dotcommander/racas/internal/pipeline"
)

// ErrNilSummary is returned when Format is called without a summary.
var ErrNilSummary = errors.New("summary is nil")

// Formatter renders a run summary.
type Formatter interface {
	Format(summary *pipeline.Summary) error
}

// FormatterFactory creates the formatter for a format name.
type FormatterFactory interface {
	CreateFormatter(format string) (Formatter, error)
}

// DefaultFormatterFactory builds the formatters of the output package.
type DefaultFormatterFactory struct {
	cfg *config.Config
}

// NewDefaultFormatterFactory creates a factory reading flags from cfg.
func NewDefaultFormatterFactory(cfg *config.Config) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{cfg: cfg}
}

// CreateFormatter returns the formatter for format.
func (f *DefaultFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	switch format {
	case config.FormatConsole:
		return output.NewConsoleFormatter(f.cfg.Quiet, f.cfg.Verbose), nil
	case config.FormatJSON:
		return output.NewJSONFormatter(f.cfg.Quiet, true, f.cfg.Output), nil
	case config.FormatMarkdown:
		return output.NewMarkdownFormatter(f.cfg.Quiet, f.cfg.Verbose, f.cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return NewOutputterWithFactory(config, NewDefaultFormatterFactory(config))
}

// NewOutputterWithFactory creates an Outputter with a custom factory.
func NewOutputterWithFactory(config *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{
		config:  config,
		factory: factory,
	}
}

// Format formats the summary using the given format
func (o *Outputter) Format(summary *pipeline.Summary, format string) error {
	if summary == nil {
		return ErrNilSummary
	}

	// Set start time if not set
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}

	formatter, err := o.factory.CreateFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}
