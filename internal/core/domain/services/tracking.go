package services

import (
	"math"
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"
)

const (
	// RoutePoints is the number of points in a discretized route curve.
	RoutePoints = 64

	// localRouteThresholdDeg separates "local" routes, drawn as straight
	// segments, from long routes drawn with a pseudo great-circle arc.
	// Distances are measured in degree space.
	localRouteThresholdDeg = 3.0

	// arcOffsetFactor scales the lateral sinusoidal offset of long routes
	// relative to their length.
	arcOffsetFactor = 0.15
)

// Ease maps an elapsed-time fraction to an animation progress fraction
// using symmetric quadratic easing: slow start, slow end.
//
//	t < 0.5: 2t²
//	t ≥ 0.5: 1 − 2(1−t)²
//
// Input is clamped to [0,1], so Ease(0)=0 and Ease(1)=1.
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// BuildRoute discretizes the path between origin and destination into the
// given number of points.
//
// Local routes (degree distance at or below the local threshold) are a
// straight interpolation. Longer routes get a sinusoidal lateral offset
// proportional to their length, which visually mimics a great-circle arc
// on the flat map. The curve always starts exactly at origin and ends
// exactly at destination.
func BuildRoute(origin, destination kernel.GeoPoint, points int) ([]kernel.GeoPoint, error) {
	if points < 2 {
		return nil, errs.NewValueIsOutOfRangeError("points", points, 2, math.MaxInt)
	}

	dist, err := origin.DegreeDistance(destination)
	if err != nil {
		return nil, err
	}

	dLat := destination.Lat() - origin.Lat()
	dLng := destination.Lng() - origin.Lng()

	// Unit vector perpendicular to the straight segment; carries the arc
	// offset sideways.
	var perpLat, perpLng float64
	if dist > 0 {
		perpLat = -dLng / dist
		perpLng = dLat / dist
	}

	arc := dist > localRouteThresholdDeg
	route := make([]kernel.GeoPoint, 0, points)

	for i := range points {
		f := float64(i) / float64(points-1)
		lat := origin.Lat() + dLat*f
		lng := origin.Lng() + dLng*f

		if arc {
			offset := math.Sin(math.Pi*f) * arcOffsetFactor * dist
			lat += perpLat * offset
			lng += perpLng * offset
		}

		// The lateral offset can nudge extreme routes past the valid
		// coordinate range; clamp so construction never fails.
		lat = math.Max(kernel.GeoPointMinLat, math.Min(kernel.GeoPointMaxLat, lat))
		lng = math.Max(kernel.GeoPointMinLng, math.Min(kernel.GeoPointMaxLng, lng))

		point, pointErr := kernel.NewGeoPoint(lat, lng)
		if pointErr != nil {
			return nil, pointErr
		}
		route = append(route, point)
	}

	return route, nil
}

// TrackSnapshot is the read-only derived state of a delivery animation at
// one instant: the full route polyline, the vehicle position, the already
// traversed prefix (the trailing path) and the eased progress fraction.
//
// Snapshots are pure values; any number of observers may compute and read
// them concurrently without side effects. They are a rendering aid and
// must never be treated as real vehicle telemetry.
type TrackSnapshot struct {
	Position  kernel.GeoPoint
	Route     []kernel.GeoPoint
	Traversed []kernel.GeoPoint
	Fraction  float64
}

// Snapshot derives the simulated vehicle state for an order.
//
// Behavior by status:
//   - InDelivery: position follows the route at the eased elapsed-time
//     fraction; the traversed prefix grows with it
//   - Delivered: position snaps to the destination with the full trail
//   - any other status: position pins to the origin with an empty trail
//     (the simulation is reset)
//
// The result is deterministic given elapsed time, so a view re-rendering
// after a duplicate notification draws the identical frame.
func Snapshot(
	status order.Status,
	origin, destination kernel.GeoPoint,
	elapsed, duration time.Duration,
) (TrackSnapshot, error) {
	route, err := BuildRoute(origin, destination, RoutePoints)
	if err != nil {
		return TrackSnapshot{}, err
	}

	switch status {
	case order.InDelivery:
		fraction := 1.0
		if duration > 0 {
			fraction = Ease(float64(elapsed) / float64(duration))
		}

		idx := int(math.Round(fraction * float64(len(route)-1)))
		return TrackSnapshot{
			Position:  route[idx],
			Route:     route,
			Traversed: route[:idx+1],
			Fraction:  fraction,
		}, nil

	case order.Delivered:
		return TrackSnapshot{
			Position:  destination,
			Route:     route,
			Traversed: route,
			Fraction:  1,
		}, nil

	default:
		return TrackSnapshot{
			Position: origin,
			Route:    route,
			Fraction: 0,
		}, nil
	}
}
