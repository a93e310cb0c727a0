package utils

import "math"

// Радиус Земли в километрах. Радиус поиска всегда задаётся в километрах.
const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// BoundingBoxForRadius возвращает рамку, покрывающую круг радиуса radiusKm
// вокруг точки. Рамка - грубый префильтр для выборки из БД, точный отбор
// выполняет HaversineDistance.
func BoundingBoxForRadius(lat, lon, radiusKm float64) (minLat, minLon, maxLat, maxLon float64) {
	dLat := radiusKm / earthRadiusKm * 180.0 / math.Pi
	minLat = lat - dLat
	maxLat = lat + dLat

	cosLat := math.Abs(math.Cos(lat * math.Pi / 180.0))
	if minLat <= -90 || maxLat >= 90 || cosLat < 1e-9 {
		// круг накрывает полюс - долгота ничего не ограничивает
		return math.Max(minLat, -90), -180, math.Min(maxLat, 90), 180
	}

	dLon := dLat / cosLat
	return minLat, lon - dLon, maxLat, lon + dLon
}
