package repository

import (
	"context"

	"github.com/bnema/favicache/internal/domain/entity"
)

// IconRepository defines operations for favicon persistence.
// URLs passed in are already normalized (fragment stripped).
type IconRepository interface {
	// FindByURLPrefix returns the icon of a row whose URL starts with prefix.
	// Returns nil, nil when nothing matches.
	FindByURLPrefix(ctx context.Context, prefix string) (entity.Icon, error)

	// FindByHostSubstring returns the icon of a row whose URL contains host.
	// Returns nil, nil when nothing matches.
	FindByHostSubstring(ctx context.Context, host string) (entity.Icon, error)

	// FindByURL retrieves the row stored under exactly this URL.
	// Returns nil, nil when there is none.
	FindByURL(ctx context.Context, url string) (*entity.IconRow, error)

	// UpdateIcon replaces the icon bytes of an existing row.
	UpdateIcon(ctx context.Context, id int64, icon entity.Icon) error

	// InsertIcon creates a new row.
	InsertIcon(ctx context.Context, url string, icon entity.Icon) error

	// DeleteAll removes every row.
	DeleteAll(ctx context.Context) error

	// Compact reclaims storage space freed by deletes.
	Compact(ctx context.Context) error

	// Count returns the number of stored rows.
	Count(ctx context.Context) (int64, error)
}
