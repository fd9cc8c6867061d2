package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached icon",
	Long:  `Discard pending icons, delete all stored icons and compact the database.`,
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewIconRenderer(app.Theme)

	if err := app.Icons.ClearAll(app.Ctx()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCleared())
	return nil
}
