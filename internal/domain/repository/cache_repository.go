package repository

import (
	"context"
	"time"

	"github.com/place-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetUserProfile получает профиль пользователя из кеша
	GetUserProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)

	// SetUserProfile сохраняет профиль пользователя в кеше
	SetUserProfile(ctx context.Context, profile *domain.UserProfile, ttl time.Duration) error
}
