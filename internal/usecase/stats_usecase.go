package usecase

import (
	"context"
	"time"

	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type StatsUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewStatsUseCase(
	placeRepo repository.PlaceRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// GetStatistics возвращает сводку по накопленным местам и разбивку по тегам.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	places, err := uc.placeRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load places for statistics", zap.Error(err))
		return nil, err
	}

	totalPhotos, err := uc.placeRepo.CountPhotos(ctx)
	if err != nil {
		uc.logger.Error("Failed to count photos", zap.Error(err))
		return nil, err
	}

	byTag := make(map[domain.FeatureTag]int)
	for _, place := range places {
		for _, tag := range place.Tags {
			byTag[tag]++
		}
	}

	return &domain.Statistics{
		TotalPlaces: len(places),
		TotalPhotos: totalPhotos,
		ByTag:       byTag,
		LastUpdated: time.Now().UTC(),
	}, nil
}
