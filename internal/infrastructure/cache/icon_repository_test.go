package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/repository/mocks"
	"github.com/bnema/favicache/internal/infrastructure/cache"
)

func TestIconRepository_CachesHits(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockIconRepository(t)
	inner.EXPECT().FindByURLPrefix(ctx, "https://example.com/").Return(entity.Icon("png"), nil).Once()

	repo := cache.NewIconRepository(inner, 1024)

	for range 3 {
		icon, err := repo.FindByURLPrefix(ctx, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, entity.Icon("png"), icon)
	}
	assert.Equal(t, 1, repo.Cached())
}

func TestIconRepository_DoesNotCacheMissesOrErrors(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockIconRepository(t)
	inner.EXPECT().FindByHostSubstring(ctx, "example.com").Return(nil, nil).Twice()
	inner.EXPECT().FindByURLPrefix(ctx, "https://example.com/").Return(nil, errors.New("locked")).Twice()

	repo := cache.NewIconRepository(inner, 1024)

	for range 2 {
		icon, err := repo.FindByHostSubstring(ctx, "example.com")
		require.NoError(t, err)
		assert.Nil(t, icon)

		_, err = repo.FindByURLPrefix(ctx, "https://example.com/")
		require.Error(t, err)
	}
	assert.Zero(t, repo.Cached())
}

func TestIconRepository_KindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockIconRepository(t)
	inner.EXPECT().FindByURLPrefix(ctx, "example.com").Return(entity.Icon("url"), nil).Once()
	inner.EXPECT().FindByHostSubstring(ctx, "example.com").Return(entity.Icon("host"), nil).Once()

	repo := cache.NewIconRepository(inner, 1024)

	byURL, err := repo.FindByURLPrefix(ctx, "example.com")
	require.NoError(t, err)
	byHost, err := repo.FindByHostSubstring(ctx, "example.com")
	require.NoError(t, err)

	assert.Equal(t, entity.Icon("url"), byURL)
	assert.Equal(t, entity.Icon("host"), byHost)
}

func TestIconRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockIconRepository(t)
	inner.EXPECT().FindByURLPrefix(ctx, "https://example.com/").Return(entity.Icon("old"), nil).Once()
	inner.EXPECT().UpdateIcon(ctx, int64(1), entity.Icon("new")).Return(nil).Once()
	inner.EXPECT().FindByURLPrefix(ctx, "https://example.com/").Return(entity.Icon("new"), nil).Once()
	inner.EXPECT().InsertIcon(ctx, "https://example.com/b", entity.Icon("b")).Return(nil).Once()
	inner.EXPECT().FindByURLPrefix(ctx, "https://example.com/").Return(entity.Icon("b"), nil).Once()
	inner.EXPECT().DeleteAll(ctx).Return(nil).Once()
	inner.EXPECT().FindByURLPrefix(ctx, "https://example.com/").Return(nil, nil).Once()

	repo := cache.NewIconRepository(inner, 1024)

	icon, err := repo.FindByURLPrefix(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("old"), icon)

	require.NoError(t, repo.UpdateIcon(ctx, 1, entity.Icon("new")))
	icon, err = repo.FindByURLPrefix(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("new"), icon)

	require.NoError(t, repo.InsertIcon(ctx, "https://example.com/b", entity.Icon("b")))
	icon, err = repo.FindByURLPrefix(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, entity.Icon("b"), icon)

	require.NoError(t, repo.DeleteAll(ctx))
	icon, err = repo.FindByURLPrefix(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Nil(t, icon)
}

func TestIconRepository_PassesThroughOtherCalls(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockIconRepository(t)
	inner.EXPECT().Count(ctx).Return(int64(1), nil).Once()
	inner.EXPECT().Compact(ctx).Return(nil).Once()

	repo := cache.NewIconRepository(inner, 1024)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, repo.Compact(ctx))
}
