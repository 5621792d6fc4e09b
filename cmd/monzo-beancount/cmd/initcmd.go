package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quarryforge/monzo-beancount/pkg/pathutil"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialise the data directory",
	Long: `Create the data directory tree, an empty main ledger file, a
starter settings file, and record DATA_DIR in .env.

Example:
  monzo-beancount init ~/beancount`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dataDir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid data directory: %w", err)
	}

	paths := pathutil.New(dataDir)
	if err := paths.Initialize(); err != nil {
		return fmt.Errorf("failed to initialise data directory: %w", err)
	}

	slog.Info("Data directory initialised", "path", dataDir)
	fmt.Printf("Initialised %s\nEdit %s to configure your accounts.\n",
		dataDir, paths.SettingsFile())
	return nil
}
