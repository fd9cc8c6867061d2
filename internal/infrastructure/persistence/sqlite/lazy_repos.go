// Package sqlite provides SQLite implementations of domain repositories.
//
// # Lazy Repository Infrastructure
//
// The lazy wrappers defer database initialization until first access, so a
// process that only records icons into memory never pays for opening the
// database. They implement the same repository interfaces as their eager
// counterparts. When the database cannot be opened every call returns the
// initialization error, which callers treat as "store unavailable".
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/repository"
)

// LazyIconRepository wraps an icon repository with lazy database initialization.
type LazyIconRepository struct {
	provider port.DatabaseProvider
	repo     repository.IconRepository
	once     sync.Once
	initErr  error
}

// NewLazyIconRepository creates a lazy-loading icon repository.
func NewLazyIconRepository(provider port.DatabaseProvider) repository.IconRepository {
	return &LazyIconRepository{provider: provider}
}

func (r *LazyIconRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewIconRepository(db)
	})
	return r.initErr
}

func (r *LazyIconRepository) FindByURLPrefix(ctx context.Context, prefix string) (entity.Icon, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByURLPrefix(ctx, prefix)
}

func (r *LazyIconRepository) FindByHostSubstring(ctx context.Context, host string) (entity.Icon, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByHostSubstring(ctx, host)
}

func (r *LazyIconRepository) FindByURL(ctx context.Context, url string) (*entity.IconRow, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByURL(ctx, url)
}

func (r *LazyIconRepository) UpdateIcon(ctx context.Context, id int64, icon entity.Icon) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.UpdateIcon(ctx, id, icon)
}

func (r *LazyIconRepository) InsertIcon(ctx context.Context, url string, icon entity.Icon) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.InsertIcon(ctx, url, icon)
}

func (r *LazyIconRepository) DeleteAll(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteAll(ctx)
}

func (r *LazyIconRepository) Compact(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Compact(ctx)
}

func (r *LazyIconRepository) Count(ctx context.Context) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Count(ctx)
}
