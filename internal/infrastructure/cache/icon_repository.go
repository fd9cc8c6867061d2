package cache

import (
	"context"
	"sync"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/repository"
)

type lookupKey struct {
	byHost bool
	query  string
}

// IconRepository remembers icons found by store lookups.
// Only hits are cached. Any write empties the cache: the store picks any
// matching row, so a new or updated row may change what a query returns.
type IconRepository struct {
	repository.IconRepository
	lookups *LRU[lookupKey, entity.Icon]

	// generation changes on every invalidation; a lookup that raced one
	// does not cache its result.
	mu         sync.Mutex
	generation uint64
}

var _ repository.IconRepository = (*IconRepository)(nil)

// NewIconRepository wraps repo with a lookup cache of at most maxBytes of icon data.
func NewIconRepository(repo repository.IconRepository, maxBytes int64) *IconRepository {
	return &IconRepository{
		IconRepository: repo,
		lookups: NewLRU[lookupKey, entity.Icon](maxBytes, func(icon entity.Icon) int64 {
			return int64(len(icon))
		}),
	}
}

func (r *IconRepository) FindByURLPrefix(ctx context.Context, prefix string) (entity.Icon, error) {
	return r.lookup(ctx, lookupKey{query: prefix}, r.IconRepository.FindByURLPrefix)
}

func (r *IconRepository) FindByHostSubstring(ctx context.Context, host string) (entity.Icon, error) {
	return r.lookup(ctx, lookupKey{byHost: true, query: host}, r.IconRepository.FindByHostSubstring)
}

func (r *IconRepository) UpdateIcon(ctx context.Context, id int64, icon entity.Icon) error {
	err := r.IconRepository.UpdateIcon(ctx, id, icon)
	r.invalidate()
	return err
}

func (r *IconRepository) InsertIcon(ctx context.Context, url string, icon entity.Icon) error {
	err := r.IconRepository.InsertIcon(ctx, url, icon)
	r.invalidate()
	return err
}

func (r *IconRepository) DeleteAll(ctx context.Context) error {
	err := r.IconRepository.DeleteAll(ctx)
	r.invalidate()
	return err
}

// Cached returns the number of cached lookups.
func (r *IconRepository) Cached() int {
	return r.lookups.Len()
}

func (r *IconRepository) lookup(
	ctx context.Context,
	key lookupKey,
	find func(context.Context, string) (entity.Icon, error),
) (entity.Icon, error) {
	if icon, ok := r.lookups.Get(key); ok {
		return icon, nil
	}

	r.mu.Lock()
	generation := r.generation
	r.mu.Unlock()

	icon, err := find(ctx, key.query)
	if err != nil || icon.IsEmpty() {
		return icon, err
	}

	r.mu.Lock()
	if r.generation == generation {
		r.lookups.Set(key, icon)
	}
	r.mu.Unlock()
	return icon, nil
}

func (r *IconRepository) invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.lookups.Clear()
}
