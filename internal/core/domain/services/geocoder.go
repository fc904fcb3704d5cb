package services

import (
	"strings"

	"attieke/internal/core/domain/model/kernel"
)

// Geocoder resolves destination cities to coordinates using a static
// lookup table. It is deliberately small: the storefront ships to a known
// set of cities and anything unresolved falls back to a default coordinate
// so the tracking map always has somewhere to draw.
type Geocoder struct {
	cities   map[string]kernel.GeoPoint
	origin   kernel.GeoPoint
	fallback kernel.GeoPoint
}

// NewGeocoder creates a geocoder with the storefront's city table.
// The origin is the Bouaké production site; the fallback destination is
// Abidjan.
func NewGeocoder() Geocoder {
	origin := mustGeoPoint(7.6894, -5.0303)   // Bouaké production site
	fallback := mustGeoPoint(5.3453, -4.0244) // Abidjan

	cities := map[string]kernel.GeoPoint{
		// Côte d'Ivoire
		"bouaké":       origin,
		"bouake":       origin,
		"abidjan":      fallback,
		"yamoussoukro": mustGeoPoint(6.8276, -5.2893),
		"san-pedro":    mustGeoPoint(4.7485, -6.6363),
		"korhogo":      mustGeoPoint(9.4580, -5.6296),
		"daloa":        mustGeoPoint(6.8774, -6.4502),
		"man":          mustGeoPoint(7.4125, -7.5536),
		"gagnoa":       mustGeoPoint(6.1319, -5.9506),
		"grand-bassam": mustGeoPoint(5.2118, -3.7390),

		// Sénégal
		"dakar":       mustGeoPoint(14.7167, -17.4677),
		"thiès":       mustGeoPoint(14.7910, -16.9359),
		"saint-louis": mustGeoPoint(16.0179, -16.4896),

		// Mali
		"bamako":  mustGeoPoint(12.6392, -8.0029),
		"sikasso": mustGeoPoint(11.3176, -5.6665),

		// Burkina Faso
		"ouagadougou":    mustGeoPoint(12.3714, -1.5197),
		"bobo-dioulasso": mustGeoPoint(11.1771, -4.2979),

		// Guinée, Togo, Bénin
		"conakry":    mustGeoPoint(9.6412, -13.5784),
		"lomé":       mustGeoPoint(6.1256, 1.2254),
		"cotonou":    mustGeoPoint(6.3703, 2.3912),
		"porto-novo": mustGeoPoint(6.4969, 2.6283),

		// France
		"paris":     mustGeoPoint(48.8566, 2.3522),
		"marseille": mustGeoPoint(43.2965, 5.3698),
		"lyon":      mustGeoPoint(45.7640, 4.8357),

		// États-Unis
		"new york":    mustGeoPoint(40.7128, -74.0060),
		"los angeles": mustGeoPoint(34.0522, -118.2437),
		"chicago":     mustGeoPoint(41.8781, -87.6298),
	}

	return Geocoder{
		cities:   cities,
		origin:   origin,
		fallback: fallback,
	}
}

// Origin returns the fixed production-site coordinate shared by all orders.
func (g Geocoder) Origin() kernel.GeoPoint {
	return g.origin
}

// Resolve returns the coordinate for a destination city.
// Lookup is case-insensitive; unknown cities resolve to the fallback
// coordinate rather than failing, because geocoding only feeds the map.
func (g Geocoder) Resolve(city string) kernel.GeoPoint {
	if point, ok := g.cities[strings.ToLower(strings.TrimSpace(city))]; ok {
		return point
	}
	return g.fallback
}

// mustGeoPoint builds a table entry. The table is hardcoded with in-range
// coordinates, so a failure here is a programming error.
func mustGeoPoint(lat, lng float64) kernel.GeoPoint {
	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		panic(err)
	}
	return point
}
