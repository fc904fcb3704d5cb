package kernel

import (
	"errors"
	"fmt"
	"math"

	"attieke/internal/pkg/errs"
	"attieke/internal/pkg/guard"
)

const (
	// GeoPointMinLat is the southernmost valid latitude in degrees.
	GeoPointMinLat float64 = -90
	// GeoPointMaxLat is the northernmost valid latitude in degrees.
	GeoPointMaxLat float64 = 90
	// GeoPointMinLng is the westernmost valid longitude in degrees.
	GeoPointMinLng float64 = -180
	// GeoPointMaxLng is the easternmost valid longitude in degrees.
	GeoPointMaxLng float64 = 180
)

// earthRadiusKm is the mean Earth radius used for haversine distances.
const earthRadiusKm = 6371.0

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a WGS84 coordinate (latitude/longitude in decimal
// degrees). It is an immutable value object; the zero value is invalid and
// fails validation, so instances must be created through NewGeoPoint.
//
// Example:
//
//	bouake, err := kernel.NewGeoPoint(7.6894, -5.0303)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(bouake) // Output: GeoPoint(7.6894,-5.0303)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given latitude and longitude.
// Latitude must lie in [-90..90] and longitude in [-180..180] degrees.
//
// Returns:
//   - GeoPoint: a valid coordinate
//   - error: validation error if either component is out of bounds or NaN
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through its constructor.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation in the form
// "GeoPoint(lat,lng)". It implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// IsEqual compares two geo points for exact coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm calculates the great-circle (haversine) distance to another
// point in kilometers. Both points must be properly constructed.
//
// Example:
//
//	bouake, _ := kernel.NewGeoPoint(7.6894, -5.0303)
//	abidjan, _ := kernel.NewGeoPoint(5.3453, -4.0244)
//	km, _ := bouake.DistanceKm(abidjan) // roughly 280 km
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// DegreeDistance calculates the Euclidean distance to another point in
// degree space. It is a cheap measure used by the route builder to decide
// whether a route is "local" (drawn straight) or long (drawn as an arc).
func (p GeoPoint) DegreeDistance(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := p.lat - other.lat
	dLng := p.lng - other.lng
	return math.Hypot(dLat, dLng), nil
}

// setLat sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so construction can run self-encapsulated validation.
func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < GeoPointMinLat || lat > GeoPointMaxLat {
		return errs.NewValueIsOutOfRangeError("lat", lat, GeoPointMinLat, GeoPointMaxLat)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with validation.
func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < GeoPointMinLng || lng > GeoPointMaxLng {
		return errs.NewValueIsOutOfRangeError("lng", lng, GeoPointMinLng, GeoPointMaxLng)
	}

	p.lng = lng
	return nil
}
