package entity

import (
	"bytes"
	"net/url"
)

// Icon is an encoded favicon image (PNG on the wire).
// A zero-length Icon is the "no icon" marker.
type Icon []byte

// IsEmpty reports whether the icon carries no image data.
func (i Icon) IsEmpty() bool {
	return len(i) == 0
}

// Equal reports whether both icons hold the same bytes.
func (i Icon) Equal(other Icon) bool {
	return bytes.Equal(i, other)
}

// IconRecord is a site's icon captured at a point in time, waiting to be persisted.
type IconRecord struct {
	URL  *url.URL
	Icon Icon
}

// NewIconRecord creates a record for the given page URL and icon bytes.
func NewIconRecord(u *url.URL, icon Icon) IconRecord {
	return IconRecord{URL: u, Icon: icon}
}

// Equal reports whether two records carry the same URL and the same icon bytes.
func (r IconRecord) Equal(other IconRecord) bool {
	if r.URL == nil || other.URL == nil {
		return r.URL == other.URL && r.Icon.Equal(other.Icon)
	}
	return r.URL.String() == other.URL.String() && r.Icon.Equal(other.Icon)
}

// IconRow is a persisted icon row.
// URL is stored without its fragment.
type IconRow struct {
	ID   int64
	URL  string
	Icon Icon
}
