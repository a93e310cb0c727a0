package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/place-microservice/internal/domain"
)

// PlaceRepository определяет append-only хранилище мест и их фотографий.
type PlaceRepository interface {
	// Insert записывает место и ноль или более фотографий одной транзакцией.
	// Идентификаторы назначает вызывающий.
	Insert(ctx context.Context, place *domain.Place, photos []*domain.Photo) error

	// GetByID возвращает место по точному идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// GetAll возвращает все места в порядке вставки
	GetAll(ctx context.Context) ([]*domain.Place, error)

	// GetInBoundingBox возвращает места внутри рамки (префильтр радиусного поиска)
	GetInBoundingBox(ctx context.Context, box domain.BoundingBox) ([]*domain.Place, error)

	// GetPhotosByPlaceID возвращает метаданные фотографий места в порядке добавления
	GetPhotosByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*domain.Photo, error)

	// CountPhotos возвращает общее число фотографий
	CountPhotos(ctx context.Context) (int, error)
}
