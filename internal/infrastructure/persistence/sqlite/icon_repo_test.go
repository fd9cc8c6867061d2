package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/favicache/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newIconRepo(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "favicache.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return ctx, lazy
}

func TestIconRepository_InsertAndFind(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewIconRepository(db)

	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/page", entity.Icon("png-1")))

	row, err := repo.FindByURL(ctx, "https://example.com/page")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Positive(t, row.ID)
	assert.Equal(t, "https://example.com/page", row.URL)
	assert.Equal(t, entity.Icon("png-1"), row.Icon)

	missing, err := repo.FindByURL(ctx, "https://example.com/other")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIconRepository_UpdateKeepsSingleRow(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewIconRepository(db)

	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/page", entity.Icon("old")))
	row, err := repo.FindByURL(ctx, "https://example.com/page")
	require.NoError(t, err)
	require.NotNil(t, row)

	require.NoError(t, repo.UpdateIcon(ctx, row.ID, entity.Icon("new")))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	updated, err := repo.FindByURL(ctx, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("new"), updated.Icon)
}

func TestIconRepository_FindByURLPrefix(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewIconRepository(db)

	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/docs/intro", entity.Icon("docs")))

	icon, err := repo.FindByURLPrefix(ctx, "https://example.com/docs")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("docs"), icon)

	icon, err = repo.FindByURLPrefix(ctx, "https://example.com/blog")
	require.NoError(t, err)
	assert.Nil(t, icon)
}

func TestIconRepository_FindByURLPrefix_EscapesGlob(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewIconRepository(db)

	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/search?q=go", entity.Icon("search")))
	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/searchXq=go", entity.Icon("other")))

	// '?' would match any single character if it were not escaped.
	icon, err := repo.FindByURLPrefix(ctx, "https://example.com/search?q")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("search"), icon)

	icon, err = repo.FindByURLPrefix(ctx, "https://example.com/*")
	require.NoError(t, err)
	assert.Nil(t, icon)
}

func TestIconRepository_FindByHostSubstring(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewIconRepository(db)

	require.NoError(t, repo.InsertIcon(ctx, "https://a.example.com/x", entity.Icon("a")))

	icon, err := repo.FindByHostSubstring(ctx, "a.example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("a"), icon)

	icon, err = repo.FindByHostSubstring(ctx, "b.example.com")
	require.NoError(t, err)
	assert.Nil(t, icon)
}

func TestIconRepository_DeleteAllAndCompact(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewIconRepository(db)

	require.NoError(t, repo.InsertIcon(ctx, "https://one.test/", entity.Icon("1")))
	require.NoError(t, repo.InsertIcon(ctx, "https://two.test/", entity.Icon("2")))

	require.NoError(t, repo.DeleteAll(ctx))
	require.NoError(t, repo.Compact(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Both are safe on an empty table.
	require.NoError(t, repo.DeleteAll(ctx))
	require.NoError(t, repo.Compact(ctx))
}

func TestLazyIconRepository_OpensOnFirstUse(t *testing.T) {
	ctx, lazy := newIconRepo(t)
	repo := sqlite.NewLazyIconRepository(lazy)

	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/", entity.Icon("x")))
	assert.True(t, lazy.IsInitialized())

	icon, err := repo.FindByURLPrefix(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("x"), icon)
}

func TestLazyIconRepository_UnavailableDatabase(t *testing.T) {
	ctx := testCtx()
	// A path below a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, writeFile(blocker))

	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "favicache.sqlite"))
	repo := sqlite.NewLazyIconRepository(lazy)

	_, err := repo.FindByURLPrefix(ctx, "https://example.com/")
	require.Error(t, err)

	_, err = repo.Count(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database initialization failed")
}
