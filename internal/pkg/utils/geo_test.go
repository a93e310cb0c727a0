package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance to itself", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(41.3851, 2.1734, 41.3851, 2.1734))
	})

	t.Run("antipodal points approximate pi times earth radius", func(t *testing.T) {
		d := HaversineDistance(0, 0, 0, 180)
		assert.InDelta(t, math.Pi*6371.0, d, 1.0)
	})

	t.Run("known distance Barcelona to Madrid", func(t *testing.T) {
		// ~505 km по большому кругу
		d := HaversineDistance(41.3851, 2.1734, 40.4168, -3.7038)
		assert.InDelta(t, 505.0, d, 5.0)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(10.0, 20.0, -30.0, 40.0)
		d2 := HaversineDistance(-30.0, 40.0, 10.0, 20.0)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("distance is in kilometers", func(t *testing.T) {
		// один градус широты ~111.19 км
		d := HaversineDistance(0, 0, 1, 0)
		assert.InDelta(t, 111.19, d, 0.1)
	})
}

func TestBoundingBoxForRadius(t *testing.T) {
	t.Run("contains the query circle", func(t *testing.T) {
		minLat, minLon, maxLat, maxLon := BoundingBoxForRadius(41.3851, 2.1734, 10)

		assert.Less(t, minLat, 41.3851)
		assert.Greater(t, maxLat, 41.3851)
		assert.Less(t, minLon, 2.1734)
		assert.Greater(t, maxLon, 2.1734)

		// точка на расстоянии ровно 10 км к северу должна попасть в рамку
		north := 41.3851 + 10.0/6371.0*180.0/math.Pi
		assert.LessOrEqual(t, north, maxLat)
	})

	t.Run("zero radius collapses to the point", func(t *testing.T) {
		minLat, minLon, maxLat, maxLon := BoundingBoxForRadius(10.0, 10.0, 0)
		assert.InDelta(t, 10.0, minLat, 1e-9)
		assert.InDelta(t, 10.0, maxLat, 1e-9)
		assert.InDelta(t, 10.0, minLon, 1e-9)
		assert.InDelta(t, 10.0, maxLon, 1e-9)
	})

	t.Run("circle over the pole widens to all longitudes", func(t *testing.T) {
		minLat, minLon, maxLat, maxLon := BoundingBoxForRadius(89.9, 0, 100)
		assert.Equal(t, -180.0, minLon)
		assert.Equal(t, 180.0, maxLon)
		assert.Equal(t, 90.0, maxLat)
		assert.Less(t, minLat, 89.9)
	})
}
