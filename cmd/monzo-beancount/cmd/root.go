// Package cmd provides the CLI commands for monzo-beancount.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarryforge/monzo-beancount/pkg/config"
	"github.com/quarryforge/monzo-beancount/pkg/pathutil"
)

var (
	envFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "monzo-beancount",
	Short: "Generate Beancount ledgers from Monzo bank exports",
	Long: `monzo-beancount converts Monzo transaction exports into a
double-entry plain-text ledger in Beancount format.

It supports:
- Regenerating the main ledger from Google Sheet exports
- Converting pot CSV files into include fragments
- Periodic regeneration with a long-running server loop
- Run statistics from a local SQLite history

Example:
  monzo-beancount init ~/beancount
  monzo-beancount generate
  monzo-beancount import
  monzo-beancount stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadEnvironment loads the env config, the path resolver, and settings.
func loadEnvironment() (*config.Env, *pathutil.Resolver, *config.Settings, error) {
	env, err := config.LoadEnv(envFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// DEBUG=true in .env enables debug logging without the flag.
	if env.Debug && !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	paths := pathutil.New(env.DataDir)

	settings, err := config.LoadSettings(paths.SettingsFile())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return env, paths, settings, nil
}
