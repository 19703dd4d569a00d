package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/logging"
	"github.com/dotcommander/racas/internal/output"
	"github.com/dotcommander/racas/internal/outputters"
	"github.com/dotcommander/racas/internal/pipeline"
	"github.com/dotcommander/racas/internal/project"
)

// Version is set at build time.
var Version = "dev"

// exitFunc is overridden in tests.
var exitFunc = os.Exit

var (
	rootPath     string
	dataDir      string
	templatesDir string
	outputDir    string
	profile      string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	parallel     bool
	concurrency  int
)

var rootCmd = &cobra.Command{
	Use:   "racas",
	Short: "Racas - static site builder for the dog breed guide",
	Long: `Racas reads the breed list and the scoring rules from the data directory,
computes the activity, grooming and climate badges of every breed and renders
the static pages of the guide from the HTML templates.

Running racas without a subcommand performs a full build.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuildCommand(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootPath, "root", "r", "", "Site root directory (default: current directory)")
	flags.StringVar(&dataDir, "data-dir", "data", "Data directory, relative to the root")
	flags.StringVar(&templatesDir, "templates-dir", "templates", "Templates directory, relative to the root")
	flags.StringVar(&outputDir, "output-dir", ".", "Output directory for pages, relative to the root")
	flags.StringVarP(&profile, "profile", "p", "", "Environment profile (default: perfil_ambiente from the rule table)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVarP(&outputFormat, "format", "f", config.FormatConsole, "Report format (console|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Report file (required for markdown)")
	flags.BoolVar(&parallel, "parallel", false, "Score breeds concurrently")
	flags.IntVarP(&concurrency, "concurrency", "j", 4, "Maximum concurrent scoring workers")

	bindings := map[string]string{
		"root":         "root",
		"dataDir":      "data-dir",
		"templatesDir": "templates-dir",
		"outputDir":    "output-dir",
		"profile":      "profile",
		"quiet":        "quiet",
		"verbose":      "verbose",
		"format":       "format",
		"output":       "output",
		"parallel":     "parallel",
		"concurrency":  "concurrency",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadRuntime loads the configuration and builds the logger.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if rootPath == "" && cfg.Root == "." {
		// running from inside a site: use the nearest ancestor that looks like one
		if info, found, err := project.FindSiteRoot(".", cfg.DataDir, config.ConfigFiles); err == nil && found {
			cfg.Root = info.Root
		}
	}
	logger, err := logging.New(cfg.Verbose, cfg.Quiet)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// report formats the summary with the configured formatter.
func report(cfg *config.Config, summary *pipeline.Summary) error {
	output.Version = Version
	if err := outputters.NewOutputter(cfg).Format(summary, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// errIssues is returned when a run recorded error-severity issues.
type errIssues int

func (e errIssues) Error() string {
	return fmt.Sprintf("%d error(s) found", int(e))
}

func checkIssues(summary *pipeline.Summary) error {
	if n := summary.ErrorCount(); n > 0 {
		return errIssues(n)
	}
	return nil
}
