package entity

import (
	"net/url"
	"strings"
)

// IconBuffer holds icons recorded since the last flush, oldest first.
// It never contains two equal records. It is not safe for concurrent use;
// the owner serializes access.
type IconBuffer struct {
	records []IconRecord
}

// NewIconBuffer creates an empty buffer.
func NewIconBuffer() *IconBuffer {
	return &IconBuffer{}
}

// Append adds the record unless an equal one is already buffered.
// Returns true if the record was added.
func (b *IconBuffer) Append(record IconRecord) bool {
	for _, existing := range b.records {
		if existing.Equal(record) {
			return false
		}
	}
	b.records = append(b.records, record)
	return true
}

// FindByURL returns the icon of the first record whose URL starts with u.
// A longer buffered URL matches a shorter query: a record for
// https://example.com/a is found by https://example.com.
func (b *IconBuffer) FindByURL(u *url.URL) (Icon, bool) {
	if u == nil {
		return nil, false
	}
	query := u.String()
	for _, rec := range b.records {
		if rec.URL != nil && strings.HasPrefix(rec.URL.String(), query) {
			return rec.Icon, true
		}
	}
	return nil, false
}

// FindByDomain returns the icon of the first record whose host equals u's
// host, ignoring case.
func (b *IconBuffer) FindByDomain(u *url.URL) (Icon, bool) {
	if u == nil {
		return nil, false
	}
	host := u.Hostname()
	for _, rec := range b.records {
		if rec.URL != nil && strings.EqualFold(rec.URL.Hostname(), host) {
			return rec.Icon, true
		}
	}
	return nil, false
}

// DrainAll returns every buffered record in insertion order and empties the buffer.
func (b *IconBuffer) DrainAll() []IconRecord {
	drained := b.records
	b.records = nil
	return drained
}

// Clear discards all buffered records.
func (b *IconBuffer) Clear() {
	b.records = nil
}

// Len returns the number of buffered records.
func (b *IconBuffer) Len() int {
	return len(b.records)
}
