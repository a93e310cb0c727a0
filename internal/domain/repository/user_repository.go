package repository

import (
	"context"

	"github.com/place-microservice/internal/domain"
)

// UserRepository определяет поиск профиля автора по идентификатору.
// Обогащение ответов автором идёт только через эту зависимость,
// никаких обратных HTTP-вызовов в собственный процесс.
type UserRepository interface {
	// GetByID возвращает профиль пользователя или ErrUserNotFound
	GetByID(ctx context.Context, id int64) (*domain.UserProfile, error)
}
