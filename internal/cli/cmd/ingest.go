package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli"
	domainurl "github.com/bnema/favicache/internal/domain/url"
	"github.com/bnema/favicache/internal/logging"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Record favicons streamed on stdin",
	Long: `Read "<url> <image-file>" lines from stdin and record each icon.

This is the long-running mode: icons are written to the database in the
background after each quiet period instead of once at exit. The config file
is watched, so toggling privacy.private_mode takes effect immediately.
Blank lines and lines starting with # are skipped.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

// parseIngestLine splits a line into url and file path.
// ok is false for blank lines and comments.
func parseIngestLine(line string) (rawURL, path string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false, nil
	}
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false, fmt.Errorf("missing image file in %q", line)
	}
	return line[:i], strings.TrimSpace(line[i+1:]), true, nil
}

func runIngest(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.WatchConfig()

	n, err := ingest(ctx, app, cmd.InOrStdin())
	logging.FromContext(ctx).Info().Int("lines", n).Msg("ingest finished")
	return err
}

// ingest records icons from r until EOF or ctx is done.
// Malformed lines and unreadable files are logged and skipped.
func ingest(ctx context.Context, app *cli.App, r io.Reader) (int, error) {
	log := logging.FromContext(ctx)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, nil
		case line, open := <-lines:
			if !open {
				select {
				case err := <-scanErr:
					return count, err
				default:
					return count, nil
				}
			}
			count++

			rawURL, path, ok, err := parseIngestLine(line)
			if err != nil {
				log.Warn().Err(err).Int("line", count).Msg("skipping line")
				continue
			}
			if !ok {
				continue
			}
			if err := recordFile(app, rawURL, path); err != nil {
				log.Warn().Err(err).Int("line", count).Msg("skipping line")
			}
		}
	}
}

func recordFile(app *cli.App, rawURL, path string) error {
	u, err := domainurl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	icon, err := encodeFile(app, path)
	if err != nil {
		return err
	}
	app.Icons.RecordIcon(app.Ctx(), u, icon, app.PrivateMode())
	return nil
}
