package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Icon sources shown by RenderLookup.
const (
	SourceIcon        = "icon"
	SourcePlaceholder = "placeholder"
	SourceNone        = "none"
)

// IconRenderer renders icon cache command output.
type IconRenderer struct {
	theme *Theme
}

// NewIconRenderer creates a new IconRenderer.
func NewIconRenderer(theme *Theme) *IconRenderer {
	return &IconRenderer{theme: theme}
}

// LookupResult describes the answer to a lookup.
type LookupResult struct {
	Query  string
	Source string
	Bytes  int
	Width  int
	Height int
	Output string
}

// RenderLookup renders a lookup result on one line.
func (r *IconRenderer) RenderLookup(res LookupResult) string {
	var badge string
	switch res.Source {
	case SourceIcon:
		badge = r.theme.Badge.Render(res.Source)
	case SourcePlaceholder:
		badge = r.theme.BadgeMuted.Render(res.Source)
	default:
		return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render("no icon"), r.theme.Subtle.Render(res.Query))
	}

	parts := []string{badge, r.theme.Normal.Render(res.Query)}
	if res.Width > 0 {
		parts = append(parts, r.theme.Subtle.Render(fmt.Sprintf("%dx%d", res.Width, res.Height)))
	}
	parts = append(parts, r.theme.Subtle.Render(fmt.Sprintf("%d bytes", res.Bytes)))
	if res.Output != "" {
		parts = append(parts, r.theme.Subtle.Render("→ "+res.Output))
	}
	return strings.Join(parts, " ")
}

// RenderRecorded summarizes a record run.
func (r *IconRenderer) RenderRecorded(recorded, total int) string {
	msg := fmt.Sprintf("recorded %d of %d icons", recorded, total)
	if recorded < total {
		return r.theme.WarningStyle.Render(msg) + r.theme.Subtle.Render(" (others were ignored)")
	}
	return r.theme.SuccessStyle.Render(msg)
}

// RenderCleared confirms a ClearAll.
func (r *IconRenderer) RenderCleared() string {
	return r.theme.SuccessStyle.Render("icon cache cleared")
}

// Stats is the content of the stats box.
type Stats struct {
	DatabasePath string
	ConfigFile   string
	Stored       int64
	Pending      int
	PrivateMode  bool
	Schema       int64
}

// RenderStats renders cache statistics in a bordered box.
func (r *IconRenderer) RenderStats(s Stats) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			r.theme.Subtle.Width(10).Render(label),
			r.theme.Normal.Render(value),
		)
	}

	private := "off"
	if s.PrivateMode {
		private = "on"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		r.theme.Title.Render("favicache"),
		row("stored", fmt.Sprintf("%d", s.Stored)),
		row("pending", fmt.Sprintf("%d", s.Pending)),
		row("private", private),
		row("database", s.DatabasePath),
		row("schema", fmt.Sprintf("v%d", s.Schema)),
		row("config", s.ConfigFile),
	)
	return r.theme.Box.Render(body)
}

// RenderError renders an error message.
func (r *IconRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("Error: " + err.Error())
}
