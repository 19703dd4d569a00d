package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/racas/internal/config"
	"github.com/dotcommander/racas/internal/pipeline"
)

var partialsCmd = &cobra.Command{
	Use:   "partials",
	Short: "Regenerate the shared head, header and footer templates",
	Long: `The partials command renders templates/head-base.html, templates/header.html
and templates/footer.html from data/site.json (name, base_url, noindex, nav,
footer_links). Existing files are replaced.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPartialsCommand(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(partialsCmd)
}

func runPartialsCommand(w io.Writer) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	return runPartials(w, cfg, logger)
}

func runPartials(w io.Writer, cfg *config.Config, logger *zap.Logger) error {
	written, err := pipeline.New(cfg, logger, pipeline.Options{}).WritePartials()
	if err != nil {
		return err
	}
	if cfg.Quiet {
		return nil
	}
	for _, path := range written {
		fmt.Fprintf(w, "[ok] %s\n", path)
	}
	return nil
}
