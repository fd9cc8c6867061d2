package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/repository"
	domainurl "github.com/bnema/favicache/internal/domain/url"
	"github.com/bnema/favicache/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/favicache/internal/logging"
)

type iconRepo struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// NewIconRepository creates a new SQLite-backed icon repository.
func NewIconRepository(db *sql.DB) repository.IconRepository {
	return &iconRepo{db: db, queries: sqlc.New(db)}
}

func (r *iconRepo) FindByURLPrefix(ctx context.Context, prefix string) (entity.Icon, error) {
	return r.findByGlob(ctx, domainurl.PrefixGlob(prefix))
}

func (r *iconRepo) FindByHostSubstring(ctx context.Context, host string) (entity.Icon, error) {
	return r.findByGlob(ctx, domainurl.ContainsGlob(host))
}

func (r *iconRepo) findByGlob(ctx context.Context, pattern string) (entity.Icon, error) {
	log := logging.FromContext(ctx)
	log.Trace().Str("pattern", pattern).Msg("querying icon")

	icon, err := r.queries.FindIconByURLGlob(ctx, pattern)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entity.Icon(icon), nil
}

func (r *iconRepo) FindByURL(ctx context.Context, url string) (*entity.IconRow, error) {
	row, err := r.queries.FindIconRowByURL(ctx, url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return iconFromRow(row), nil
}

func (r *iconRepo) UpdateIcon(ctx context.Context, id int64, icon entity.Icon) error {
	log := logging.FromContext(ctx)
	log.Debug().Int64("id", id).Int("bytes", len(icon)).Msg("updating icon")

	return r.queries.UpdateIconByID(ctx, sqlc.UpdateIconByIDParams{
		Icon: icon,
		ID:   id,
	})
}

func (r *iconRepo) InsertIcon(ctx context.Context, url string, icon entity.Icon) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", url).Int("bytes", len(icon)).Msg("inserting icon")

	return r.queries.InsertIcon(ctx, sqlc.InsertIconParams{
		Url:  url,
		Icon: icon,
	})
}

func (r *iconRepo) DeleteAll(ctx context.Context) error {
	return r.queries.DeleteAllIcons(ctx)
}

// Compact runs VACUUM; sqlc has no query form for it.
func (r *iconRepo) Compact(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "VACUUM")
	return err
}

func (r *iconRepo) Count(ctx context.Context) (int64, error) {
	return r.queries.CountIcons(ctx)
}

func iconFromRow(row sqlc.Icon) *entity.IconRow {
	return &entity.IconRow{
		ID:   row.ID,
		URL:  row.Url,
		Icon: entity.Icon(row.Icon),
	}
}
