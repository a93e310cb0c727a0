package domain

import "time"

// BoundingBox - прямоугольник в градусах для префильтра радиусного поиска.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Statistics представляет сводку по накопленным местам.
type Statistics struct {
	TotalPlaces int                `json:"total_places"`
	TotalPhotos int                `json:"total_photos"`
	ByTag       map[FeatureTag]int `json:"by_tag"`
	LastUpdated time.Time          `json:"last_updated"`
}
