// Package cmd provides Cobra CLI commands for favicache.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli"
	"github.com/bnema/favicache/internal/domain/build"
)

var (
	app         *cli.App
	buildInfo   build.Info
	configFile  string
	metricsFile string

	rootCmd = &cobra.Command{
		Use:   "favicache",
		Short: "Favicon cache for the dumb browser",
		Long: `favicache keeps the favicons of visited pages.

Recorded icons are buffered in memory, deduplicated and written to a
SQLite database after a short quiet period. Lookups by page URL or by
domain check the buffer first, then the database, and fall back to a
placeholder icon.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:  configFile,
				MetricsFile: metricsFile,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/favicache/config.toml)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Commands that failed before PostRun still need a final flush.
		if app != nil {
			_ = app.Close()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
