package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/entity"
	domainurl "github.com/bnema/favicache/internal/domain/url"
)

const iconFilePerm = 0o644

var (
	lookupDomain     bool
	lookupAllowEmpty bool
	lookupOutput     string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <url>",
	Short: "Find the favicon of a page",
	Long: `Look up the icon recorded for a page, or with --domain for any page
of the same host. Without a match the placeholder icon is returned,
unless --allow-empty is given.

Examples:
  favicache lookup https://example.com/docs
  favicache lookup --domain example.com -o example.png`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupDomain, "domain", false, "match any page on the same host")
	lookupCmd.Flags().BoolVar(&lookupAllowEmpty, "allow-empty", false, "report no icon instead of the placeholder")
	lookupCmd.Flags().StringVarP(&lookupOutput, "output", "o", "", "write the PNG icon to this file")
}

func runLookup(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewIconRenderer(app.Theme)

	u, err := domainurl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", args[0], err)
	}

	var icon entity.Icon
	if lookupDomain {
		icon = app.Icons.LookupIconForDomain(app.Ctx(), u, lookupAllowEmpty)
	} else {
		icon = app.Icons.LookupIcon(app.Ctx(), u, lookupAllowEmpty)
	}

	res := styles.LookupResult{Query: u.String(), Source: styles.SourceNone}
	if !icon.IsEmpty() {
		res.Source = styles.SourceIcon
		if icon.Equal(app.Icons.Placeholder()) {
			res.Source = styles.SourcePlaceholder
		}
		res.Bytes = len(icon)
		if w, h, err := app.Codec.Dimensions(icon); err == nil {
			res.Width, res.Height = w, h
		}
		if lookupOutput != "" {
			if err := os.WriteFile(lookupOutput, icon, iconFilePerm); err != nil {
				return fmt.Errorf("write icon: %w", err)
			}
			res.Output = lookupOutput
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderLookup(res))
	return nil
}
