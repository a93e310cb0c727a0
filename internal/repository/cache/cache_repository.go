package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetUserProfile получает профиль пользователя из кеша
func (r *cacheRepository) GetUserProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	key := fmt.Sprintf("user:profile:%d", userID)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		r.logger.Error("Failed to unmarshal profile from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}

	return &profile, nil
}

// SetUserProfile сохраняет профиль пользователя в кеше
func (r *cacheRepository) SetUserProfile(ctx context.Context, profile *domain.UserProfile, ttl time.Duration) error {
	key := fmt.Sprintf("user:profile:%d", profile.ID)
	data, err := json.Marshal(profile)
	if err != nil {
		r.logger.Error("Failed to marshal profile", zap.Error(err))
		return fmt.Errorf("marshal profile: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}
