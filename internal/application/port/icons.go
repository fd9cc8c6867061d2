package port

import (
	"context"
	"io"

	"github.com/bnema/favicache/internal/domain/entity"
)

// FlushScheduler debounces icon saves.
// Every ChangeOccurred extends the quiet period; once it elapses the
// registered handler runs.
type FlushScheduler interface {
	ChangeOccurred()
	SetSaveHandler(handler func(context.Context))
}

// WriteQueue runs persistence tasks off the caller's goroutine,
// one at a time, in submission order.
type WriteQueue interface {
	// Submit enqueues task without waiting for it to run. It blocks while
	// the queue is full and fails once the queue is closed or ctx is done.
	Submit(ctx context.Context, task func(context.Context)) error

	// Drain blocks until every accepted task has run or ctx is done.
	Drain(ctx context.Context) error
}

// PlaceholderProvider supplies the default "no icon" image.
type PlaceholderProvider interface {
	Icon() entity.Icon
}

// IconCodec converts between image files and the stored icon encoding.
type IconCodec interface {
	// Encode decodes any supported image format from r and returns PNG bytes.
	Encode(r io.Reader) (entity.Icon, error)

	// Dimensions reports the pixel size of an encoded icon.
	Dimensions(icon entity.Icon) (width, height int, err error)
}

// Lookup result sources reported to IconMetrics.
const (
	LookupSourceBuffer   = "buffer"
	LookupSourceStore    = "store"
	LookupSourceFallback = "fallback"
)

// Lookup kinds reported to IconMetrics.
const (
	LookupKindURL    = "url"
	LookupKindDomain = "domain"
)

// IconMetrics receives icon cache events.
type IconMetrics interface {
	IconRecorded()
	IconRejected(reason string)
	LookupServed(kind, source string)
	RecordsFlushed(n int)
	StoreError(op string)
}
