package kernel_test

import (
	"fmt"
	"math"
	"testing"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(7.6894, -5.0303)

		require.NoError(t, err)
		assert.InDelta(t, 7.6894, point.Lat(), 1e-9)
		assert.InDelta(t, -5.0303, point.Lng(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		corners := [][2]float64{
			{kernel.GeoPointMinLat, kernel.GeoPointMinLng},
			{kernel.GeoPointMinLat, kernel.GeoPointMaxLng},
			{kernel.GeoPointMaxLat, kernel.GeoPointMinLng},
			{kernel.GeoPointMaxLat, kernel.GeoPointMaxLng},
			{0, 0},
		}

		for _, corner := range corners {
			t.Run(fmt.Sprintf("(%g,%g)", corner[0], corner[1]), func(t *testing.T) {
				_, err := kernel.NewGeoPoint(corner[0], corner[1])
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude too low", -90.01, 0},
			{"latitude too high", 90.01, 0},
			{"longitude too low", 0, -180.01},
			{"longitude too high", 0, 180.01},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("should reject NaN coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(math.NaN(), 0)
		require.Error(t, err)

		_, err = kernel.NewGeoPoint(0, math.NaN())
		require.Error(t, err)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("should reject zero value point", func(t *testing.T) {
		var point kernel.GeoPoint

		require.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("should compare by coordinates", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(5.3453, -4.0244)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(5.3453, -4.0244)
		require.NoError(t, err)
		c, err := kernel.NewGeoPoint(7.6894, -5.0303)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("should measure zero distance to itself", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(7.6894, -5.0303)
		require.NoError(t, err)

		distance, err := point.DistanceKm(point)
		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("should measure known distance between cities", func(t *testing.T) {
		bouake, err := kernel.NewGeoPoint(7.6894, -5.0303)
		require.NoError(t, err)
		abidjan, err := kernel.NewGeoPoint(5.3453, -4.0244)
		require.NoError(t, err)

		distance, err := bouake.DistanceKm(abidjan)
		require.NoError(t, err)

		// Roughly 283 km as the crow flies.
		assert.InDelta(t, 283, distance, 15)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		bouake, err := kernel.NewGeoPoint(7.6894, -5.0303)
		require.NoError(t, err)
		dakar, err := kernel.NewGeoPoint(14.7167, -17.4677)
		require.NoError(t, err)

		forward, err := bouake.DistanceKm(dakar)
		require.NoError(t, err)
		backward, err := dakar.DistanceKm(bouake)
		require.NoError(t, err)

		assert.InDelta(t, forward, backward, 1e-9)
	})
}

func TestGeoPoint_DegreeDistance(t *testing.T) {
	t.Run("should compute planar distance in degree space", func(t *testing.T) {
		origin, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		other, err := kernel.NewGeoPoint(3, 4)
		require.NoError(t, err)

		distance, err := origin.DegreeDistance(other)
		require.NoError(t, err)
		assert.InDelta(t, 5, distance, 1e-9)
	})
}
