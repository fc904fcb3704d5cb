package services_test

import (
	"math"
	"testing"
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func TestEase(t *testing.T) {
	t.Run("should follow symmetric quadratic easing", func(t *testing.T) {
		testCases := []struct {
			input, want float64
		}{
			{0, 0},
			{0.125, 0.03125},
			{0.25, 0.125},
			{0.5, 0.5},
			{0.75, 0.875},
			{1, 1},
		}

		for _, tc := range testCases {
			assert.InDelta(t, tc.want, services.Ease(tc.input), 1e-9,
				"Ease(%g)", tc.input)
		}
	})

	t.Run("should clamp input outside the unit interval", func(t *testing.T) {
		assert.Equal(t, 0.0, services.Ease(-0.5))
		assert.Equal(t, 1.0, services.Ease(1.5))
	})

	t.Run("should be monotonic", func(t *testing.T) {
		previous := -1.0
		for i := 0; i <= 100; i++ {
			value := services.Ease(float64(i) / 100)
			assert.GreaterOrEqual(t, value, previous)
			previous = value
		}
	})
}

func TestBuildRoute(t *testing.T) {
	bouake := func(t *testing.T) kernel.GeoPoint { return mustPoint(t, 7.6894, -5.0303) }

	t.Run("should start at origin and end at destination", func(t *testing.T) {
		origin := bouake(t)
		destination := mustPoint(t, 48.8566, 2.3522) // Paris

		route, err := services.BuildRoute(origin, destination, services.RoutePoints)

		require.NoError(t, err)
		require.Len(t, route, services.RoutePoints)

		first, err := route[0].IsEqual(origin)
		require.NoError(t, err)
		assert.True(t, first)

		last, err := route[len(route)-1].IsEqual(destination)
		require.NoError(t, err)
		assert.True(t, last)
	})

	t.Run("should draw short routes as straight segments", func(t *testing.T) {
		origin := bouake(t)
		destination := mustPoint(t, 6.8276, -5.2893) // Yamoussoukro, well under the arc threshold

		route, err := services.BuildRoute(origin, destination, 3)
		require.NoError(t, err)

		midLat := (origin.Lat() + destination.Lat()) / 2
		midLng := (origin.Lng() + destination.Lng()) / 2
		assert.InDelta(t, midLat, route[1].Lat(), 1e-9)
		assert.InDelta(t, midLng, route[1].Lng(), 1e-9)
	})

	t.Run("should bow long routes sideways", func(t *testing.T) {
		origin := bouake(t)
		destination := mustPoint(t, 48.8566, 2.3522) // Paris, far past the arc threshold

		route, err := services.BuildRoute(origin, destination, 3)
		require.NoError(t, err)

		// The midpoint must deviate from the straight chord.
		midLat := (origin.Lat() + destination.Lat()) / 2
		midLng := (origin.Lng() + destination.Lng()) / 2
		deviation := math.Hypot(route[1].Lat()-midLat, route[1].Lng()-midLng)
		assert.Greater(t, deviation, 1.0)
	})

	t.Run("should handle identical origin and destination", func(t *testing.T) {
		origin := bouake(t)

		route, err := services.BuildRoute(origin, origin, 8)

		require.NoError(t, err)
		require.Len(t, route, 8)
		for _, point := range route {
			equal, err := point.IsEqual(origin)
			require.NoError(t, err)
			assert.True(t, equal)
		}
	})

	t.Run("should require at least two points", func(t *testing.T) {
		origin := bouake(t)

		_, err := services.BuildRoute(origin, origin, 1)
		require.Error(t, err)

		_, err = services.BuildRoute(origin, origin, 0)
		require.Error(t, err)
	})
}

func TestSnapshot(t *testing.T) {
	origin := func(t *testing.T) kernel.GeoPoint { return mustPoint(t, 7.6894, -5.0303) }
	destination := func(t *testing.T) kernel.GeoPoint { return mustPoint(t, 5.3453, -4.0244) }

	t.Run("should pin pending orders to the origin", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Received, order.Validated, order.InProduction, order.Cancelled,
		} {
			snapshot, err := services.Snapshot(
				status, origin(t), destination(t), time.Minute, 4*time.Minute)

			require.NoError(t, err)
			equal, err := snapshot.Position.IsEqual(origin(t))
			require.NoError(t, err)
			assert.True(t, equal, "%s should pin to the origin", status)
			assert.Empty(t, snapshot.Traversed)
			assert.Equal(t, 0.0, snapshot.Fraction)
			assert.Len(t, snapshot.Route, services.RoutePoints)
		}
	})

	t.Run("should snap delivered orders to the destination", func(t *testing.T) {
		snapshot, err := services.Snapshot(
			order.Delivered, origin(t), destination(t), time.Hour, 4*time.Minute)

		require.NoError(t, err)
		equal, err := snapshot.Position.IsEqual(destination(t))
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Equal(t, 1.0, snapshot.Fraction)
		assert.Len(t, snapshot.Traversed, services.RoutePoints)
	})

	t.Run("should hold in-delivery orders at the start before time passes", func(t *testing.T) {
		snapshot, err := services.Snapshot(
			order.InDelivery, origin(t), destination(t), 0, 4*time.Minute)

		require.NoError(t, err)
		equal, err := snapshot.Position.IsEqual(origin(t))
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Equal(t, 0.0, snapshot.Fraction)
		assert.Len(t, snapshot.Traversed, 1)
	})

	t.Run("should place in-delivery orders mid-route at half time", func(t *testing.T) {
		snapshot, err := services.Snapshot(
			order.InDelivery, origin(t), destination(t), 2*time.Minute, 4*time.Minute)

		require.NoError(t, err)
		assert.InDelta(t, 0.5, snapshot.Fraction, 1e-9)

		// Eased halfway lands on the middle of the 64-point route.
		expectedIdx := int(math.Round(0.5 * float64(services.RoutePoints-1)))
		assert.Len(t, snapshot.Traversed, expectedIdx+1)
		equal, err := snapshot.Position.IsEqual(snapshot.Route[expectedIdx])
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should finish in-delivery orders once the duration elapses", func(t *testing.T) {
		snapshot, err := services.Snapshot(
			order.InDelivery, origin(t), destination(t), 10*time.Minute, 4*time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 1.0, snapshot.Fraction)
		equal, err := snapshot.Position.IsEqual(destination(t))
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Len(t, snapshot.Traversed, services.RoutePoints)
	})

	t.Run("should treat a zero duration as arrived", func(t *testing.T) {
		snapshot, err := services.Snapshot(
			order.InDelivery, origin(t), destination(t), 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1.0, snapshot.Fraction)
	})

	t.Run("should be deterministic for the same elapsed time", func(t *testing.T) {
		first, err := services.Snapshot(
			order.InDelivery, origin(t), destination(t), 90*time.Second, 4*time.Minute)
		require.NoError(t, err)

		second, err := services.Snapshot(
			order.InDelivery, origin(t), destination(t), 90*time.Second, 4*time.Minute)
		require.NoError(t, err)

		assert.Equal(t, first.Fraction, second.Fraction)
		equal, err := first.Position.IsEqual(second.Position)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Len(t, second.Traversed, len(first.Traversed))
	})
}
