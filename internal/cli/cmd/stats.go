package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show icon cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewIconRenderer(app.Theme)

	stored, err := app.IconRepo.Count(app.Ctx())
	if err != nil {
		return fmt.Errorf("count icons: %w", err)
	}

	schema, err := app.SchemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStats(styles.Stats{
		DatabasePath: app.Config.Database.Path,
		ConfigFile:   app.ConfigManager.ConfigFile(),
		Stored:       stored,
		Pending:      app.Icons.Pending(),
		PrivateMode:  app.PrivateMode(),
		Schema:       schema,
	}))
	return nil
}
