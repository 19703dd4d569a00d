package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score [slug...]",
	Short: "Print the badge scores without writing any file",
	Long: `The score command loads the data files, scores every breed and prints the
activity, grooming and climate badges. Pass breed slugs to restrict the report.

Use --verbose for the per-component facts and --format json for the full
facts and texts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScoreCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScoreCommand(slugs []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signalContext()
	defer stop()
	return runScore(ctx, cfg, logger, slugs)
}

func runScore(ctx context.Context, cfg *config.Config, logger *zap.Logger, slugs []string) error {
	summary, err := pipeline.New(cfg, logger, pipeline.Options{}).Run(ctx)
	if err != nil {
		return err
	}
	if err := filterBreeds(summary, slugs); err != nil {
		return err
	}
	return report(cfg, summary)
}

// filterBreeds keeps only the requested slugs, in the order given.
func filterBreeds(summary *pipeline.Summary, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}
	selected := make([]pipeline.BreedResult, 0, len(slugs))
	for _, slug := range slugs {
		i := slices.IndexFunc(summary.Breeds, func(b pipeline.BreedResult) bool { return b.Slug == slug })
		if i < 0 {
			return fmt.Errorf("unknown breed slug: %s", slug)
		}
		selected = append(selected, summary.Breeds[i])
	}
	summary.Breeds = selected
	return nil
}
