package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/place-microservice/internal/config"
	"github.com/place-microservice/internal/domain"
	"github.com/place-microservice/internal/domain/repository"
	"github.com/place-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент внешнего сервиса пользователей.
// Реализует контракт обогащения автором: lookup(id) -> профиль или отсутствие.
func NewClient(cfg *config.UsersConfig, logger *zap.Logger) repository.UserRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// GetByID возвращает профиль пользователя. Отсутствие пользователя -
// ErrUserNotFound, любая другая ошибка транспорта или декодирования
// возвращается вызывающему.
func (c *client) GetByID(ctx context.Context, id int64) (*domain.UserProfile, error) {
	url := fmt.Sprintf("%s/api/v1/users/%d", c.baseURL, id)

	c.logger.Debug("Calling users API", zap.String("url", url), zap.Int64("user_id", id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.ErrUserNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Users API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("users API error: status %d", resp.StatusCode)
	}

	var profile domain.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &profile, nil
}
