// Package url provides URL helpers for icon keys and store queries.
package url

import (
	"net/url"
	"strings"
)

// InternalScheme is the browser's own scheme for built-in pages.
const InternalScheme = "dumb"

// DefaultIgnoredSchemes lists schemes whose pages never get a cached icon.
var DefaultIgnoredSchemes = []string{InternalScheme, "ftp", "file", "view-source"}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if strings.Contains(input, "://") || strings.HasPrefix(input, "about:") || strings.HasPrefix(input, "view-source:") {
		return input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// Parse normalizes user input and parses it into a URL.
func Parse(input string) (*url.URL, error) {
	return url.Parse(Normalize(input))
}

// Canonical returns a copy of u with its scheme and host lowercased,
// so icon keys compare equal regardless of how the page URL was typed.
func Canonical(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Host = strings.ToLower(c.Host)
	return &c
}

// StripFragment renders the canonical form of u without its #fragment.
// This is the key icons are persisted under.
func StripFragment(u *url.URL) string {
	if u == nil {
		return ""
	}
	stripped := Canonical(u)
	stripped.Fragment = ""
	stripped.RawFragment = ""
	return stripped.String()
}

// HasScheme reports whether u's scheme is one of schemes (case-insensitive).
func HasScheme(u *url.URL, schemes []string) bool {
	if u == nil {
		return false
	}
	for _, s := range schemes {
		if strings.EqualFold(u.Scheme, s) {
			return true
		}
	}
	return false
}

// EscapeGlob escapes SQLite GLOB metacharacters so s matches literally.
func EscapeGlob(s string) string {
	replacer := strings.NewReplacer(
		"[", "[[]",
		"*", "[*]",
		"?", "[?]",
	)
	return replacer.Replace(s)
}

// PrefixGlob returns a GLOB pattern matching any string that starts with prefix.
func PrefixGlob(prefix string) string {
	return EscapeGlob(prefix) + "*"
}

// ContainsGlob returns a GLOB pattern matching any string that contains part.
func ContainsGlob(part string) string {
	return "*" + EscapeGlob(part) + "*"
}
