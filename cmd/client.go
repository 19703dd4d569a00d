package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/pipeline"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Write data/breeds-client.json only",
	Long: `The client command scores every breed and writes the compact payload read
by the compare page (data/breeds-client.json). No HTML page is rendered.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runClientCommand(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(clientCmd)
}

func runClientCommand() error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signalContext()
	defer stop()
	return runClient(ctx, cfg, logger)
}

func runClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	summary, err := pipeline.New(cfg, logger, pipeline.Options{Client: true}).Run(ctx)
	if err != nil {
		return err
	}
	return report(cfg, summary)
}
