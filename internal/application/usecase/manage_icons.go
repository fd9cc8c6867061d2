// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/repository"
	domainurl "github.com/bnema/favicache/internal/domain/url"
	"github.com/bnema/favicache/internal/logging"
)

// Reasons reported when RecordIcon ignores an icon.
const (
	RejectPrivate       = "private"
	RejectIgnoredScheme = "ignored_scheme"
	RejectInvalidURL    = "invalid_url"
	RejectEmpty         = "empty"
	RejectPlaceholder   = "placeholder"
	RejectDuplicate     = "duplicate"
)

// ErrWriteQueueUnavailable is returned when a store operation cannot be queued
// because the queue is closed or the context ended first.
var ErrWriteQueueUnavailable = errors.New("write queue unavailable")

// ManageIconsUseCase buffers recorded favicons, persists them in the
// background and answers icon lookups.
//
// Lookups check the in-memory buffer first since it holds the freshest
// icons, then the store, then fall back to the placeholder.
type ManageIconsUseCase struct {
	iconRepo       repository.IconRepository
	scheduler      port.FlushScheduler
	writes         port.WriteQueue
	placeholder    port.PlaceholderProvider
	metrics        port.IconMetrics
	ignoredSchemes []string

	mu     sync.Mutex
	buffer *entity.IconBuffer
}

// NewManageIconsUseCase creates the icon cache and registers Flush as the
// scheduler's save handler. A nil ignoredSchemes uses the default set.
func NewManageIconsUseCase(
	iconRepo repository.IconRepository,
	scheduler port.FlushScheduler,
	writes port.WriteQueue,
	placeholder port.PlaceholderProvider,
	ignoredSchemes []string,
) *ManageIconsUseCase {
	if ignoredSchemes == nil {
		ignoredSchemes = domainurl.DefaultIgnoredSchemes
	}
	uc := &ManageIconsUseCase{
		iconRepo:       iconRepo,
		scheduler:      scheduler,
		writes:         writes,
		placeholder:    placeholder,
		metrics:        noopMetrics{},
		ignoredSchemes: ignoredSchemes,
		buffer:         entity.NewIconBuffer(),
	}
	scheduler.SetSaveHandler(uc.Flush)
	return uc
}

// SetMetrics installs a metrics sink. Passing nil disables metrics.
func (uc *ManageIconsUseCase) SetMetrics(m port.IconMetrics) {
	if m == nil {
		m = noopMetrics{}
	}
	uc.metrics = m
}

// RecordIcon buffers the icon captured for a page and reports whether it was
// added. Nothing happens in private mode, for ignored schemes, for empty icons
// or for the placeholder itself. Re-recording an identical icon is absorbed.
func (uc *ManageIconsUseCase) RecordIcon(ctx context.Context, u *url.URL, icon entity.Icon, isPrivate bool) bool {
	log := logging.FromContext(ctx)

	var reason string
	switch {
	case isPrivate:
		reason = RejectPrivate
	case u == nil:
		reason = RejectInvalidURL
	case domainurl.HasScheme(u, uc.ignoredSchemes):
		reason = RejectIgnoredScheme
	case icon.IsEmpty():
		reason = RejectEmpty
	case icon.Equal(uc.placeholder.Icon()):
		reason = RejectPlaceholder
	}
	if reason != "" {
		uc.metrics.IconRejected(reason)
		log.Debug().Str("reason", reason).Msg("icon not recorded")
		return false
	}

	key := domainurl.Canonical(u)
	record := entity.NewIconRecord(key, append(entity.Icon(nil), icon...))

	uc.mu.Lock()
	added := uc.buffer.Append(record)
	pending := uc.buffer.Len()
	uc.mu.Unlock()

	if !added {
		uc.metrics.IconRejected(RejectDuplicate)
		return false
	}

	uc.metrics.IconRecorded()
	log.Debug().Str("url", key.String()).Int("pending", pending).Msg("icon recorded")
	uc.scheduler.ChangeOccurred()
	return true
}

// LookupIcon returns the icon for a page URL.
// A URL without a path has no specific icon. When nothing is found the
// placeholder is returned, or an empty icon if allowEmpty is set.
func (uc *ManageIconsUseCase) LookupIcon(ctx context.Context, u *url.URL, allowEmpty bool) entity.Icon {
	if u == nil || u.Path == "" {
		return uc.fallback(port.LookupKindURL, allowEmpty)
	}
	u = domainurl.Canonical(u)

	uc.mu.Lock()
	icon, ok := uc.buffer.FindByURL(u)
	uc.mu.Unlock()
	if ok {
		uc.metrics.LookupServed(port.LookupKindURL, port.LookupSourceBuffer)
		return icon
	}

	icon, err := uc.iconRepo.FindByURLPrefix(ctx, domainurl.StripFragment(u))
	if err != nil {
		uc.metrics.StoreError("find_by_url_prefix")
		logging.FromContext(ctx).Debug().Err(err).Str("url", u.String()).Msg("icon store lookup failed")
	} else if !icon.IsEmpty() {
		uc.metrics.LookupServed(port.LookupKindURL, port.LookupSourceStore)
		return icon
	}

	return uc.fallback(port.LookupKindURL, allowEmpty)
}

// LookupIconForDomain returns an icon for any page on u's host.
func (uc *ManageIconsUseCase) LookupIconForDomain(ctx context.Context, u *url.URL, allowEmpty bool) entity.Icon {
	if u == nil || u.Hostname() == "" {
		return uc.fallback(port.LookupKindDomain, allowEmpty)
	}
	u = domainurl.Canonical(u)

	uc.mu.Lock()
	icon, ok := uc.buffer.FindByDomain(u)
	uc.mu.Unlock()
	if ok {
		uc.metrics.LookupServed(port.LookupKindDomain, port.LookupSourceBuffer)
		return icon
	}

	icon, err := uc.iconRepo.FindByHostSubstring(ctx, u.Hostname())
	if err != nil {
		uc.metrics.StoreError("find_by_host")
		logging.FromContext(ctx).Debug().Err(err).Str("host", u.Hostname()).Msg("icon store lookup failed")
	} else if !icon.IsEmpty() {
		uc.metrics.LookupServed(port.LookupKindDomain, port.LookupSourceStore)
		return icon
	}

	return uc.fallback(port.LookupKindDomain, allowEmpty)
}

// Flush drains the buffer and queues one write per record, in buffer order.
// It waits for queue space but not for the writes themselves. Records are
// lost only if a write fails or the queue closes or ctx ends first.
func (uc *ManageIconsUseCase) Flush(ctx context.Context) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	records := uc.buffer.DrainAll()
	uc.mu.Unlock()

	if len(records) == 0 {
		return
	}

	queued := 0
	var submitErr error
	for _, rec := range records {
		key := domainurl.StripFragment(rec.URL)
		icon := rec.Icon
		if err := uc.writes.Submit(ctx, func(ctx context.Context) { uc.persist(ctx, key, icon) }); err != nil {
			submitErr = err
			continue
		}
		queued++
	}

	if submitErr != nil {
		log.Warn().Err(submitErr).
			Int("lost", len(records)-queued).
			Msg("icon writes could not be queued")
	}
	uc.metrics.RecordsFlushed(queued)
	log.Debug().Int("count", queued).Msg("icons flushed")
}

// persist stores one icon: update the existing row for key, or insert one.
func (uc *ManageIconsUseCase) persist(ctx context.Context, key string, icon entity.Icon) {
	ctx = logging.WithURL(ctx, key)
	log := logging.FromContext(ctx)

	row, err := uc.iconRepo.FindByURL(ctx, key)
	if err != nil {
		uc.metrics.StoreError("find_by_url")
		log.Warn().Err(err).Msg("failed to look up stored icon")
		return
	}

	op := "insert"
	if row != nil {
		op = "update"
		err = uc.iconRepo.UpdateIcon(ctx, row.ID, icon)
	} else {
		err = uc.iconRepo.InsertIcon(ctx, key, icon)
	}
	if err != nil {
		uc.metrics.StoreError(op)
		log.Warn().Err(err).Str("op", op).Msg("failed to save icon")
	}
}

// Sync waits for every queued icon write to complete.
func (uc *ManageIconsUseCase) Sync(ctx context.Context) error {
	if err := uc.writes.Drain(ctx); err != nil {
		return fmt.Errorf("failed to wait for icon writes: %w", err)
	}
	return nil
}

// Shutdown flushes pending icons and waits until they are stored.
func (uc *ManageIconsUseCase) Shutdown(ctx context.Context) error {
	uc.Flush(ctx)
	return uc.Sync(ctx)
}

// ClearAll discards buffered icons, deletes every stored icon and compacts
// the store. The store work is queued behind pending writes so nothing
// flushed earlier can reappear afterwards.
func (uc *ManageIconsUseCase) ClearAll(ctx context.Context) error {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	uc.buffer.Clear()
	uc.mu.Unlock()

	done := make(chan error, 1)
	if err := uc.writes.Submit(ctx, func(ctx context.Context) { done <- uc.wipeStore(ctx) }); err != nil {
		return fmt.Errorf("failed to clear icons: %w: %w", ErrWriteQueueUnavailable, err)
	}

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return fmt.Errorf("failed to clear icons: %w", ctx.Err())
	}

	log.Info().Msg("icon store cleared")
	return nil
}

func (uc *ManageIconsUseCase) wipeStore(ctx context.Context) error {
	if err := uc.iconRepo.DeleteAll(ctx); err != nil {
		uc.metrics.StoreError("delete_all")
		return fmt.Errorf("failed to delete icons: %w", err)
	}
	if err := uc.iconRepo.Compact(ctx); err != nil {
		uc.metrics.StoreError("compact")
		return fmt.Errorf("failed to compact icon store: %w", err)
	}
	return nil
}

// Pending returns the number of icons waiting to be flushed.
func (uc *ManageIconsUseCase) Pending() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.buffer.Len()
}

// Placeholder returns the default icon.
func (uc *ManageIconsUseCase) Placeholder() entity.Icon {
	return uc.placeholder.Icon()
}

func (uc *ManageIconsUseCase) fallback(kind string, allowEmpty bool) entity.Icon {
	uc.metrics.LookupServed(kind, port.LookupSourceFallback)
	if allowEmpty {
		return nil
	}
	return uc.placeholder.Icon()
}

type noopMetrics struct{}

func (noopMetrics) IconRecorded() {}
func (noopMetrics) IconRejected(string) {}
func (noopMetrics) LookupServed(string, string) {}
func (noopMetrics) RecordsFlushed(int) {}
func (noopMetrics) StoreError(string) {}
