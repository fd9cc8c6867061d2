package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/favicache/internal/cli"
	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/entity"
	domainurl "github.com/bnema/favicache/internal/domain/url"
)

// decodeConcurrency bounds parallel image decoding.
const decodeConcurrency = 4

var recordPrivate bool

var recordCmd = &cobra.Command{
	Use:   "record <url>=<image-file>...",
	Short: "Record favicons for pages",
	Long: `Decode each image file and record it as the favicon of its page.

PNG, JPEG, GIF, BMP, WebP and ICO files are accepted; icons are stored as PNG.
Icons for internal, ftp, file and view-source pages are ignored, as is
everything in private mode.

Examples:
  favicache record https://example.com/=favicon.ico
  favicache record example.com/a=a.png example.com/b=b.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().BoolVar(&recordPrivate, "private", false, "treat the pages as private (nothing is recorded)")
}

// recordArg is one parsed url=file argument.
type recordArg struct {
	URL  *url.URL
	Path string
}

// parseRecordArg splits "url=file" on the last '=' so query strings survive.
func parseRecordArg(arg string) (recordArg, error) {
	i := strings.LastIndex(arg, "=")
	if i <= 0 || i == len(arg)-1 {
		return recordArg{}, fmt.Errorf("invalid argument %q: expected <url>=<image-file>", arg)
	}
	u, err := domainurl.Parse(arg[:i])
	if err != nil {
		return recordArg{}, fmt.Errorf("invalid url in %q: %w", arg, err)
	}
	return recordArg{URL: u, Path: arg[i+1:]}, nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewIconRenderer(app.Theme)

	parsed := make([]recordArg, len(args))
	for i, arg := range args {
		ra, err := parseRecordArg(arg)
		if err != nil {
			return err
		}
		parsed[i] = ra
	}

	icons := make([]entity.Icon, len(parsed))
	g, gctx := errgroup.WithContext(app.Ctx())
	g.SetLimit(decodeConcurrency)
	for i, ra := range parsed {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			icon, err := encodeFile(app, ra.Path)
			if err != nil {
				return err
			}
			icons[i] = icon
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	private := recordPrivate || app.PrivateMode()
	recorded := recordIcons(app, parsed, icons, private)

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderRecorded(recorded, len(parsed)))
	return nil
}

// recordIcons records icons[i] for parsed[i] and returns how many were added.
func recordIcons(app *cli.App, parsed []recordArg, icons []entity.Icon, private bool) int {
	recorded := 0
	for i, ra := range parsed {
		if app.Icons.RecordIcon(app.Ctx(), ra.URL, icons[i], private) {
			recorded++
		}
	}
	return recorded
}

// encodeFile reads an image file and converts it to the stored icon format.
func encodeFile(app *cli.App, path string) (entity.Icon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	icon, err := app.Codec.Encode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return icon, nil
}
