package dto

import "github.com/place-microservice/internal/domain"

// CreatePlaceResponse - ответ на создание места
type CreatePlaceResponse struct {
	Message string        `json:"message"`
	Object  *domain.Place `json:"object"`
}

// GetPlaceResponse - ответ на запрос места по идентификатору.
// User равен null, если профиль автора недоступен.
type GetPlaceResponse struct {
	Place *domain.Place       `json:"place"`
	User  *domain.UserProfile `json:"user"`
}

// PlaceWithAuthor - место с профилем автора в результатах поиска
type PlaceWithAuthor struct {
	Place  *domain.Place       `json:"place"`
	Author *domain.UserProfile `json:"author"`
}

// RadiusSearchResponse - ответ радиусного поиска
type RadiusSearchResponse struct {
	Message string            `json:"message"`
	Places  []PlaceWithAuthor `json:"places"`
}
