package dto

// CreatePlaceRequest - запрос на создание места.
// Диапазон координат не проверяется: система принимает любые значения.
type CreatePlaceRequest struct {
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Tags      []string `json:"tags,omitempty"`
}

// RadiusSearchRequest - запрос радиусного поиска. Радиус в километрах.
type RadiusSearchRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius" validate:"min=0"`
	Count     int     `json:"count" validate:"min=0"`
}
