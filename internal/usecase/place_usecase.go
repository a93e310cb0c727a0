package usecase

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/domain/repository"
	"github.com/place-microservice/internal/pkg/errors"
	"github.com/place-microservice/internal/pkg/utils"
	"github.com/place-microservice/internal/storage"
	"github.com/place-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

type PlaceUseCase struct {
	placeRepo  repository.PlaceRepository
	userRepo   repository.UserRepository  // nil - обогащение автором отключено
	cacheRepo  repository.CacheRepository // nil - без кеша профилей
	photos     *storage.PhotoStore
	logger     *zap.Logger
	profileTTL time.Duration
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	photos *storage.PhotoStore,
	logger *zap.Logger,
	profileTTL time.Duration,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo:  placeRepo,
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		photos:     photos,
		logger:     logger,
		profileTTL: profileTTL,
	}
}

// CreatePlace создаёт место от имени identity. Файлы сначала пишутся в
// staging, строки места и фотографий коммитятся одной транзакцией, и только
// после этого файлы публикуются; при любой ошибке staging удаляется.
func (uc *PlaceUseCase) CreatePlace(
	ctx context.Context,
	identity *domain.Identity,
	req dto.CreatePlaceRequest,
	files []*multipart.FileHeader,
) (*domain.Place, error) {
	tags := make([]domain.FeatureTag, 0, len(req.Tags))
	for _, raw := range req.Tags {
		tag, ok := domain.ParseFeatureTag(raw)
		if !ok {
			return nil, errors.ErrInvalidTag.WithDetails(map[string]interface{}{
				"tag": raw,
			})
		}
		tags = append(tags, tag)
	}

	placeID := uuid.New()
	now := time.Now().UTC()

	upload, err := uc.photos.Begin(placeID)
	if err != nil {
		uc.logger.Error("Failed to begin photo upload", zap.Error(err))
		return nil, errors.ErrStorageError
	}
	defer upload.Discard()

	photos := make([]*domain.Photo, 0, len(files))
	for _, file := range files {
		// пустые файлы пропускаются
		if file.Size == 0 {
			continue
		}

		src, err := file.Open()
		if err != nil {
			uc.logger.Error("Failed to open uploaded file", zap.String("name", file.Filename), zap.Error(err))
			return nil, errors.ErrStorageError
		}

		fileID := uuid.New()
		name, err := upload.Add(fileID, file.Filename, src)
		src.Close()
		if err != nil {
			uc.logger.Error("Failed to stage photo", zap.String("name", file.Filename), zap.Error(err))
			return nil, errors.ErrStorageError
		}

		photos = append(photos, &domain.Photo{
			ID:       fileID,
			PlaceID:  placeID,
			AddedBy:  identity.ID,
			AddedAt:  now,
			FileName: name,
		})
	}

	place := &domain.Place{
		ID:        placeID,
		AddedBy:   identity.ID,
		AddedAt:   now,
		Longitude: req.Longitude,
		Latitude:  req.Latitude,
		Tags:      tags,
		Verified:  false,
		Photos:    photos,
	}

	if err := uc.placeRepo.Insert(ctx, place, photos); err != nil {
		return nil, err
	}

	if err := upload.Commit(); err != nil {
		uc.logger.Error("Failed to publish photos",
			zap.String("place_id", placeID.String()),
			zap.Error(err),
		)
		return nil, errors.ErrStorageError
	}

	uc.logger.Info("Place created",
		zap.String("place_id", placeID.String()),
		zap.Int64("added_by", identity.ID),
		zap.Int("photos", len(photos)),
	)

	return place, nil
}

// GetPlace возвращает место с фотографиями и профилем автора.
func (uc *PlaceUseCase) GetPlace(ctx context.Context, id uuid.UUID) (*dto.GetPlaceResponse, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := uc.placeRepo.GetPhotosByPlaceID(ctx, id)
	if err != nil {
		return nil, err
	}
	place.Photos = photos

	return &dto.GetPlaceResponse{
		Place: place,
		User:  uc.lookupAuthor(ctx, place.AddedBy),
	}, nil
}

// SearchByRadius возвращает места не дальше RadiusKm километров от центра,
// не больше Count штук. Порядок результатов - порядок вставки в хранилище.
func (uc *PlaceUseCase) SearchByRadius(
	ctx context.Context,
	req dto.RadiusSearchRequest,
) ([]dto.PlaceWithAuthor, error) {
	if req.RadiusKm < 0 {
		return nil, errors.ErrInvalidRadius
	}

	result := []dto.PlaceWithAuthor{}
	if req.Count == 0 {
		return result, nil
	}

	places, err := uc.placesInRadius(ctx, req.Latitude, req.Longitude, req.RadiusKm)
	if err != nil {
		return nil, err
	}

	if len(places) > req.Count {
		places = places[:req.Count]
	}

	for _, place := range places {
		result = append(result, dto.PlaceWithAuthor{
			Place:  place,
			Author: uc.lookupAuthor(ctx, place.AddedBy),
		})
	}

	return result, nil
}

// placesInRadius делает грубую выборку по рамке координат и затем точный
// отбор по haversine-расстоянию.
func (uc *PlaceUseCase) placesInRadius(
	ctx context.Context,
	lat, lon, radiusKm float64,
) ([]*domain.Place, error) {
	minLat, minLon, maxLat, maxLon := utils.BoundingBoxForRadius(lat, lon, radiusKm)

	var candidates []*domain.Place
	var err error
	if minLon <= -180 || maxLon >= 180 {
		// рамка вырождается (полюс либо переход через антимеридиан) - полный скан
		candidates, err = uc.placeRepo.GetAll(ctx)
	} else {
		candidates, err = uc.placeRepo.GetInBoundingBox(ctx, domain.BoundingBox{
			MinLat: minLat,
			MinLon: minLon,
			MaxLat: maxLat,
			MaxLon: maxLon,
		})
	}
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Place, 0, len(candidates))
	for _, place := range candidates {
		distance := utils.HaversineDistance(lat, lon, place.Latitude, place.Longitude)
		if distance <= radiusKm {
			matched = append(matched, place)
		}
	}

	return matched, nil
}

// lookupAuthor возвращает профиль автора или nil. Недоступность сервиса
// пользователей деградирует до пустого автора и не валит запрос.
func (uc *PlaceUseCase) lookupAuthor(ctx context.Context, userID int64) *domain.UserProfile {
	if uc.userRepo == nil {
		return nil
	}

	if uc.cacheRepo != nil {
		if profile, err := uc.cacheRepo.GetUserProfile(ctx, userID); err == nil && profile != nil {
			return profile
		}
	}

	profile, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err != errors.ErrUserNotFound {
			uc.logger.Warn("Author lookup failed", zap.Int64("user_id", userID), zap.Error(err))
		}
		return nil
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetUserProfile(ctx, profile, uc.profileTTL); err != nil {
			uc.logger.Warn("Failed to cache author profile", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return profile
}
