package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/client"
	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/pipeline"
	"github.com/dotcommander/racas/internal/watch"
)

var watchMode bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Score every breed and render the site",
	Long: `The build command runs the full pipeline:

- validates data/rules and data/racas against the embedded schemas
- scores activity, grooming and climate for every breed
- renders racas/<slug>.html, racas/index.html, comparar/index.html,
  index.html and the static pages from templates/
- writes data/breeds-client.json for the compare page

With --watch the build is repeated whenever a data or template file changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuildCommand(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	buildCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Rebuild when data or template files change")
	_ = viper.BindPFlag("watch", buildCmd.Flags().Lookup("watch"))
	rootCmd.AddCommand(buildCmd)
}

func runBuildCommand() error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signalContext()
	defer stop()

	err = runBuild(ctx, cfg, logger)
	if !cfg.Watch {
		return err
	}
	if err != nil {
		logger.Error("build failed", zap.Error(err))
	}
	return watchBuild(ctx, cfg, logger)
}

// runBuild runs one full build and reports it.
func runBuild(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	summary, err := pipeline.New(cfg, logger, pipeline.AllOutputs).Run(ctx)
	if err != nil {
		return err
	}
	if err := report(cfg, summary); err != nil {
		return err
	}
	return checkIssues(summary)
}

// watchBuild rebuilds on every change until ctx is cancelled. Failed
// rebuilds are logged and the watch continues.
func watchBuild(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	return watch.Watch(ctx, watch.Config{
		Dirs:   []string{cfg.DataPath(), cfg.TemplatesPath()},
		Ignore: []string{client.FileName},
		Logger: logger,
	}, func(ctx context.Context, changed []string) error {
		return runBuild(ctx, cfg, logger)
	})
}
