package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/domain/repository"
	"github.com/place-microservice/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) repository.PlaceRepository {
	t.Helper()

	sqlxDB, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	sqlxDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlxDB.Close() })

	db, err := NewDBForTest(sqlxDB, nil)
	require.NoError(t, err)

	return NewPlaceRepository(db)
}

func testPlace(lat, lon float64, tags ...domain.FeatureTag) *domain.Place {
	return &domain.Place{
		ID:        uuid.New(),
		AddedBy:   42,
		AddedAt:   time.Now().UTC().Truncate(time.Microsecond),
		Longitude: lon,
		Latitude:  lat,
		Tags:      tags,
		Verified:  false,
	}
}

func TestPlaceRepository_InsertAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	place := testPlace(10.0, 10.0, domain.TagSand, domain.TagFishingSpot)
	require.NoError(t, repo.Insert(ctx, place, nil))

	got, err := repo.GetByID(ctx, place.ID)
	require.NoError(t, err)

	assert.Equal(t, place.ID, got.ID)
	assert.Equal(t, place.AddedBy, got.AddedBy)
	assert.True(t, place.AddedAt.Equal(got.AddedAt))
	// координаты возвращаются ровно такими, какими были сохранены
	assert.Equal(t, 10.0, got.Latitude)
	assert.Equal(t, 10.0, got.Longitude)
	// порядок тегов сохраняется
	assert.Equal(t, []domain.FeatureTag{domain.TagSand, domain.TagFishingSpot}, got.Tags)
	assert.False(t, got.Verified)
}

func TestPlaceRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrPlaceNotFound, err)
}

func TestPlaceRepository_InsertWithPhotos(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	place := testPlace(1.5, -3.25)
	photos := []*domain.Photo{
		{
			ID:       uuid.New(),
			PlaceID:  place.ID,
			AddedBy:  place.AddedBy,
			AddedAt:  place.AddedAt,
			FileName: "a.jpg",
		},
		{
			ID:       uuid.New(),
			PlaceID:  place.ID,
			AddedBy:  place.AddedBy,
			AddedAt:  place.AddedAt,
			FileName: "b.png",
		},
	}

	require.NoError(t, repo.Insert(ctx, place, photos))

	got, err := repo.GetPhotosByPlaceID(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.jpg", got[0].FileName)
	assert.Equal(t, "b.png", got[1].FileName)
	assert.Equal(t, place.ID, got[0].PlaceID)

	count, err := repo.CountPhotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPlaceRepository_GetAll_InsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testPlace(1, 1)
	second := testPlace(2, 2)
	third := testPlace(3, 3)
	for _, p := range []*domain.Place{first, second, third} {
		require.NoError(t, repo.Insert(ctx, p, nil))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, third.ID, all[2].ID)
}

func TestPlaceRepository_GetInBoundingBox(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inside := testPlace(10.0, 10.0)
	edge := testPlace(10.5, 10.5)
	outside := testPlace(20.0, 20.0)
	for _, p := range []*domain.Place{inside, edge, outside} {
		require.NoError(t, repo.Insert(ctx, p, nil))
	}

	got, err := repo.GetInBoundingBox(ctx, domain.BoundingBox{
		MinLat: 9.5,
		MinLon: 9.5,
		MaxLat: 10.5,
		MaxLon: 10.5,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, inside.ID, got[0].ID)
	assert.Equal(t, edge.ID, got[1].ID)
}

func TestPlaceRepository_EmptyTags(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	place := testPlace(0, 0)
	require.NoError(t, repo.Insert(ctx, place, nil))

	got, err := repo.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}
