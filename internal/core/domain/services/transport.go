package services

import "time"

// TransportClass is a cosmetic categorization of a delivery used to pick
// the tracking animation pacing and icon. It never gates business logic
// and plays no part in fee computation.
type TransportClass string

const (
	// TransportLocalFast is a bike courier inside the home city.
	TransportLocalFast TransportClass = "local_fast"

	// TransportRegionalGround is road freight within the home region.
	TransportRegionalGround TransportClass = "regional_ground"

	// TransportInternationalAir is air freight everywhere else.
	TransportInternationalAir TransportClass = "international_air"
)

// homeRegionCountries lists the countries reachable by ground transport.
func homeRegionCountries() map[string]struct{} {
	return map[string]struct{}{
		"Côte d'Ivoire": {},
		"Sénégal":       {},
		"Mali":          {},
		"Burkina Faso":  {},
		"Guinée":        {},
		"Togo":          {},
		"Bénin":         {},
	}
}

// ClassifyTransport derives the transport class for a destination:
// the home city is local, home-region countries go by ground, anything
// else flies.
func ClassifyTransport(city, country string) TransportClass {
	if IsHomeCity(city) {
		return TransportLocalFast
	}

	if _, ok := homeRegionCountries()[country]; ok {
		return TransportRegionalGround
	}

	return TransportInternationalAir
}

// Duration returns the simulated delivery duration for the class.
// Purely cosmetic pacing for the tracking animation, not a real ETA.
func (c TransportClass) Duration() time.Duration {
	switch c {
	case TransportLocalFast:
		return 90 * time.Second
	case TransportRegionalGround:
		return 4 * time.Minute
	case TransportInternationalAir:
		return 7 * time.Minute
	default:
		return 4 * time.Minute
	}
}

// Icon returns the map marker icon name for the class.
func (c TransportClass) Icon() string {
	switch c {
	case TransportLocalFast:
		return "bike"
	case TransportInternationalAir:
		return "plane"
	default:
		return "truck"
	}
}

// String returns the wire symbol of the class.
func (c TransportClass) String() string {
	return string(c)
}
