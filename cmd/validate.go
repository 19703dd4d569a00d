package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data files and templates without building",
	Long: `The validate command checks the site inputs and reports every problem found:

- data/rules against the rules schema, its weight sets and the profile
- data/racas against the breed schema, plus duplicate slugs
- data/site and data/aliases_oficiais decode correctly
- every page template exists; missing partials are reported as warnings

It exits with status 1 when an error is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidateCommand(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidateCommand() error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	return runValidate(cfg, logger)
}

func runValidate(cfg *config.Config, logger *zap.Logger) error {
	summary, err := pipeline.New(cfg, logger, pipeline.Options{}).Validate()
	if err != nil {
		return err
	}
	if err := report(cfg, summary); err != nil {
		return err
	}
	return checkIssues(summary)
}
