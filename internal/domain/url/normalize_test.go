package url

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "bare domain", input: "example.com", want: "https://example.com"},
		{name: "domain with path", input: "example.com/page", want: "https://example.com/page"},
		{name: "keeps http", input: "http://example.com", want: "http://example.com"},
		{name: "keeps file", input: "file:///tmp/x.html", want: "file:///tmp/x.html"},
		{name: "keeps internal", input: "dumb://home", want: "dumb://home"},
		{name: "keeps view-source", input: "view-source:https://a.b", want: "view-source:https://a.b"},
		{name: "trims spaces", input: "  example.com  ", want: "https://example.com"},
		{name: "search query untouched", input: "hello world", want: "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestStripFragment(t *testing.T) {
	u, err := url.Parse("https://example.com/page?q=1#section")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/page?q=1", StripFragment(u))
	// Original URL is left alone.
	assert.Equal(t, "section", u.Fragment)
	assert.Equal(t, "", StripFragment(nil))
}

func TestCanonical(t *testing.T) {
	u, err := url.Parse("HTTPS://Example.COM:8080/Path/Case?Q=1#Frag")
	require.NoError(t, err)

	c := Canonical(u)
	assert.Equal(t, "https://example.com:8080/Path/Case?Q=1#Frag", c.String())
	// Only the copy changes.
	assert.Equal(t, "Example.COM:8080", u.Host)
	assert.Nil(t, Canonical(nil))

	assert.Equal(t, "https://example.com:8080/Path/Case?Q=1", StripFragment(u))
}

func TestHasScheme(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"file:///etc/hosts", true},
		{"ftp://mirror.test/pub", true},
		{"FTP://mirror.test/pub", true},
		{"dumb://home", true},
		{"view-source:https://example.com", true},
		{"https://example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, HasScheme(u, DefaultIgnoredSchemes))
		})
	}
	assert.False(t, HasScheme(nil, DefaultIgnoredSchemes))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "plain", EscapeGlob("plain"))
	assert.Equal(t, "a[*]b[?]c[[]d]", EscapeGlob("a*b?c[d]"))
	assert.Equal(t, "https://x.test/[?]q=1*", PrefixGlob("https://x.test/?q=1"))
	assert.Equal(t, "*x.test*", ContainsGlob("x.test"))
}
