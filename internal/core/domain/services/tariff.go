package services

import (
	"strings"
)

// Delivery fee tiers in F CFA. Business-configurable data, not core logic:
// the defaults mirror the storefront's published rates.
const (
	defaultHomeCityFee      = 0
	defaultSameCountryFee   = 1000
	defaultNeighborFee      = 5000
	defaultInternationalFee = 15000
)

// Tariff computes delivery fees from the destination classification.
//
// Tiers:
//   - free in the production hub's home city
//   - flat fee elsewhere in the home country
//   - flat fee in listed neighboring countries
//   - higher flat fee for any other destination
//
// A Tariff is immutable after construction; FeeFor is a pure function.
type Tariff struct {
	homeCountry      string
	neighbors        map[string]struct{}
	homeCityFee      int
	sameCountryFee   int
	neighborFee      int
	internationalFee int
}

// NewTariff creates a tariff with explicit tier amounts and neighbor list.
func NewTariff(homeCountry string, neighbors []string, homeCityFee, sameCountryFee, neighborFee, internationalFee int) Tariff {
	set := make(map[string]struct{}, len(neighbors))
	for _, n := range neighbors {
		set[n] = struct{}{}
	}

	return Tariff{
		homeCountry:      homeCountry,
		neighbors:        set,
		homeCityFee:      homeCityFee,
		sameCountryFee:   sameCountryFee,
		neighborFee:      neighborFee,
		internationalFee: internationalFee,
	}
}

// NewDefaultTariff creates the storefront's standard tariff: free in
// Bouaké, 1000 F elsewhere in Côte d'Ivoire, 5000 F in the neighboring
// West African countries served, 15000 F internationally.
func NewDefaultTariff() Tariff {
	return NewTariff(
		HomeCountry,
		[]string{"Sénégal", "Mali", "Burkina Faso", "Bénin", "Togo", "Guinée"},
		defaultHomeCityFee,
		defaultSameCountryFee,
		defaultNeighborFee,
		defaultInternationalFee,
	)
}

// FeeFor returns the delivery fee in F CFA for a destination.
//
// Example:
//
//	tariff := services.NewDefaultTariff()
//	tariff.FeeFor("Bouaké", "Côte d'Ivoire") // 0
//	tariff.FeeFor("Dakar", "Sénégal")        // 5000
func (t Tariff) FeeFor(city, country string) int {
	if IsHomeCity(city) {
		return t.homeCityFee
	}

	if country == t.homeCountry {
		return t.sameCountryFee
	}

	if _, ok := t.neighbors[country]; ok {
		return t.neighborFee
	}

	return t.internationalFee
}

// HomeCity is the production hub's city. Orders delivered there are free
// and classified as local transport.
const HomeCity = "Bouaké"

// HomeCountry is the production hub's country.
const HomeCountry = "Côte d'Ivoire"

// IsHomeCity reports whether a destination city is the production hub.
// Matching is accent-tolerant: both "Bouaké" and "Bouake" spellings count.
func IsHomeCity(city string) bool {
	lower := strings.ToLower(city)
	return strings.Contains(lower, "bouaké") || strings.Contains(lower, "bouake")
}
