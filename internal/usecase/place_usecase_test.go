package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/pkg/errors"
	"github.com/place-microservice/internal/storage"
	"github.com/place-microservice/internal/usecase"
	"github.com/place-microservice/internal/usecase/dto"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) Insert(ctx context.Context, place *domain.Place, photos []*domain.Photo) error {
	args := m.Called(ctx, place, photos)
	return args.Error(0)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetAll(ctx context.Context) ([]*domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Place, error) {
	args := m.Called(ctx, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPhotosByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*domain.Photo, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Photo), args.Error(1)
}

func (m *MockPlaceRepository) CountPhotos(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func newTestUseCase(t *testing.T, placeRepo *MockPlaceRepository, userRepo *MockUserRepository) *usecase.PlaceUseCase {
	t.Helper()

	photos, err := storage.NewPhotoStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	// типизированный nil-мок сделал бы интерфейс ненулевым
	if userRepo == nil {
		return usecase.NewPlaceUseCase(placeRepo, nil, nil, photos, zap.NewNop(), time.Minute)
	}
	return usecase.NewPlaceUseCase(placeRepo, userRepo, nil, photos, zap.NewNop(), time.Minute)
}

func TestPlaceUseCase_CreatePlace(t *testing.T) {
	ctx := context.Background()
	identity := &domain.Identity{ID: 42, Username: "anna"}

	t.Run("creates place with ordered tags", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Place"), mock.Anything).Return(nil)

		place, err := uc.CreatePlace(ctx, identity, dto.CreatePlaceRequest{
			Longitude: 2.1734,
			Latitude:  41.3851,
			Tags:      []string{"Sand", "fishing_spot"},
		}, nil)
		require.NoError(t, err)

		// координаты не округляются и не ограничиваются
		assert.Equal(t, 2.1734, place.Longitude)
		assert.Equal(t, 41.3851, place.Latitude)
		assert.Equal(t, int64(42), place.AddedBy)
		assert.Equal(t, []domain.FeatureTag{domain.TagSand, domain.TagFishingSpot}, place.Tags)
		assert.False(t, place.Verified)
		assert.NotEqual(t, uuid.Nil, place.ID)
		assert.Empty(t, place.Photos)

		placeRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown tag", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		_, err := uc.CreatePlace(ctx, identity, dto.CreatePlaceRequest{
			Tags: []string{"volcano"},
		}, nil)

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_TAG", appErr.Code)
		placeRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("accepts extreme coordinates", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

		place, err := uc.CreatePlace(ctx, identity, dto.CreatePlaceRequest{
			Longitude: 500.0,
			Latitude:  -200.0,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 500.0, place.Longitude)
		assert.Equal(t, -200.0, place.Latitude)
	})

	t.Run("propagates database error", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(errors.ErrDatabaseError)

		_, err := uc.CreatePlace(ctx, identity, dto.CreatePlaceRequest{}, nil)
		assert.Equal(t, errors.ErrDatabaseError, err)
	})
}

func TestPlaceUseCase_GetPlace(t *testing.T) {
	ctx := context.Background()
	placeID := uuid.New()

	stored := &domain.Place{
		ID:        placeID,
		AddedBy:   42,
		AddedAt:   time.Now().UTC(),
		Longitude: 10.0,
		Latitude:  10.0,
		Tags:      []domain.FeatureTag{domain.TagToilet},
	}

	t.Run("returns place with photos and author", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		userRepo := &MockUserRepository{}
		uc := newTestUseCase(t, placeRepo, userRepo)

		photos := []*domain.Photo{{ID: uuid.New(), PlaceID: placeID, FileName: "a.jpg"}}
		placeRepo.On("GetByID", ctx, placeID).Return(stored, nil)
		placeRepo.On("GetPhotosByPlaceID", ctx, placeID).Return(photos, nil)
		userRepo.On("GetByID", ctx, int64(42)).Return(&domain.UserProfile{ID: 42, Username: "anna"}, nil)

		result, err := uc.GetPlace(ctx, placeID)
		require.NoError(t, err)
		assert.Equal(t, placeID, result.Place.ID)
		assert.Len(t, result.Place.Photos, 1)
		require.NotNil(t, result.User)
		assert.Equal(t, "anna", result.User.Username)
	})

	t.Run("not found", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("GetByID", ctx, placeID).Return(nil, errors.ErrPlaceNotFound)

		_, err := uc.GetPlace(ctx, placeID)
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})

	t.Run("author lookup failure degrades to null user", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		userRepo := &MockUserRepository{}
		uc := newTestUseCase(t, placeRepo, userRepo)

		placeRepo.On("GetByID", ctx, placeID).Return(stored, nil)
		placeRepo.On("GetPhotosByPlaceID", ctx, placeID).Return([]*domain.Photo{}, nil)
		userRepo.On("GetByID", ctx, int64(42)).Return(nil, errors.ErrUserNotFound)

		result, err := uc.GetPlace(ctx, placeID)
		require.NoError(t, err)
		assert.Nil(t, result.User)
	})
}

func TestPlaceUseCase_SearchByRadius(t *testing.T) {
	ctx := context.Background()

	center := &domain.Place{ID: uuid.New(), AddedBy: 1, Latitude: 10.0, Longitude: 10.0}
	nearby := &domain.Place{ID: uuid.New(), AddedBy: 2, Latitude: 10.1, Longitude: 10.1}

	t.Run("zero radius keeps only the exact point", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("GetInBoundingBox", ctx, mock.Anything).
			Return([]*domain.Place{center, nearby}, nil)

		result, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			Latitude:  10.0,
			Longitude: 10.0,
			RadiusKm:  0,
			Count:     100,
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, center.ID, result[0].Place.ID)
	})

	t.Run("returns everything within radius in store order", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("GetInBoundingBox", ctx, mock.Anything).
			Return([]*domain.Place{center, nearby}, nil)

		result, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			Latitude:  10.0,
			Longitude: 10.0,
			RadiusKm:  50,
			Count:     100,
		})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, center.ID, result[0].Place.ID)
		assert.Equal(t, nearby.ID, result[1].Place.ID)
	})

	t.Run("caps results at count", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("GetInBoundingBox", ctx, mock.Anything).
			Return([]*domain.Place{center, nearby}, nil)

		result, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			Latitude:  10.0,
			Longitude: 10.0,
			RadiusKm:  50,
			Count:     1,
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, center.ID, result[0].Place.ID)
	})

	t.Run("count zero returns empty result", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		result, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			Latitude:  10.0,
			Longitude: 10.0,
			RadiusKm:  50,
			Count:     0,
		})
		require.NoError(t, err)
		assert.Empty(t, result)
		placeRepo.AssertNotCalled(t, "GetInBoundingBox")
	})

	t.Run("empty store returns empty result", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		placeRepo.On("GetInBoundingBox", ctx, mock.Anything).Return([]*domain.Place{}, nil)

		result, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			Latitude:  10.0,
			Longitude: 10.0,
			RadiusKm:  1,
			Count:     10,
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("negative radius is rejected", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		uc := newTestUseCase(t, placeRepo, nil)

		_, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			RadiusKm: -1,
			Count:    10,
		})
		assert.Equal(t, errors.ErrInvalidRadius, err)
	})

	t.Run("enriches results with authors", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		userRepo := &MockUserRepository{}
		uc := newTestUseCase(t, placeRepo, userRepo)

		placeRepo.On("GetInBoundingBox", ctx, mock.Anything).
			Return([]*domain.Place{center}, nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.UserProfile{ID: 1, Username: "bob"}, nil)

		result, err := uc.SearchByRadius(ctx, dto.RadiusSearchRequest{
			Latitude:  10.0,
			Longitude: 10.0,
			RadiusKm:  1,
			Count:     10,
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].Author)
		assert.Equal(t, "bob", result[0].Author.Username)
	})
}
