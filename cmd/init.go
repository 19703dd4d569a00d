package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotcommander/racas/internal/config"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .racasrc.json with the current settings",
	Long: `The init command writes .racasrc.json in the site root with the effective
configuration (defaults, environment and flags). An existing file is kept
unless --force is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInitCommand(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing .racasrc.json")
	rootCmd.AddCommand(initCmd)
}

func runInitCommand(w io.Writer) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	return runInit(w, cfg, forceInit)
}

func runInit(w io.Writer, cfg *config.Config, force bool) error {
	path := filepath.Join(cfg.Root, config.ConfigFiles[0])
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	// The file lives in the root; keep the root itself out of it.
	saved := *cfg
	saved.Root = "."
	saved.Quiet, saved.Verbose, saved.Watch = false, false, false
	if err := config.SaveConfig(&saved, path); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(w, "[ok] %s\n", path)
	}
	return nil
}
