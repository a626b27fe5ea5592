package pricing

import (
	"fmt"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/pkg/errs"
)

// RouteKey identifies a directed origin/destination pair in the route table.
// Rates are symmetric in practice but stored directionally, matching how
// operations maintains the table.
type RouteKey struct {
	Origin      kernel.CitySlug
	Destination kernel.CitySlug
}

// RouteRate is the distance component of a route's price: the nominal distance
// in kilometers and the flat rate charged for covering it.
type RouteRate struct {
	DistanceKm int
	Rate       int
}

// Tariff holds every lookup table the price estimator needs. It is injected
// configuration: the composition root loads it from the tariff file at startup,
// the refresh job swaps in new snapshots, and tests substitute fixtures.
// A Tariff value is treated as immutable once handed to the estimator.
type Tariff struct {
	// BaseRates maps each speed tier to its base delivery rate.
	BaseRates map[SpeedTier]int

	// SpeedSurcharges maps each speed tier to its additional surcharge.
	// Standard carries a zero surcharge.
	SpeedSurcharges map[SpeedTier]int

	// DeliveryTimes maps each speed tier to its human-readable time estimate.
	DeliveryTimes map[SpeedTier]string

	// WeightCharges maps each weight band to its surcharge.
	// Charges must be non-decreasing in band order.
	WeightCharges map[WeightBand]int

	// HandlingFees maps each package type to its handling fee.
	HandlingFees map[PackageType]int

	// Routes is the directed route table. Identity pairs (origin == destination)
	// may be present with a zero rate; the estimator treats them as zero either way.
	Routes map[RouteKey]RouteRate

	// FallbackRoute is used when a city pair is absent from Routes.
	// An unknown route is priced, never rejected.
	FallbackRoute RouteRate

	// TaxRatePercent is the service tax applied to the pre-tax subtotal,
	// expressed as a whole percentage.
	TaxRatePercent int
}

// mustSlug converts a known-good literal into a CitySlug for the default table.
func mustSlug(s string) kernel.CitySlug {
	slug, err := kernel.NewCitySlug(s)
	if err != nil {
		panic(fmt.Sprintf("pricing: invalid built-in city slug %q: %v", s, err))
	}
	return slug
}

// route builds a directed route table entry for the default tariff.
func route(origin, destination string, distanceKm, rate int) (RouteKey, RouteRate) {
	return RouteKey{Origin: mustSlug(origin), Destination: mustSlug(destination)},
		RouteRate{DistanceKm: distanceKm, Rate: rate}
}

// DefaultTariff returns the built-in rate card. The numbers are the live
// production rates; the tariff file only needs to carry overrides.
func DefaultTariff() Tariff {
	routes := map[RouteKey]RouteRate{}
	for _, r := range []struct {
		origin, destination string
		distanceKm, rate    int
	}{
		{"dhaka", "chittagong", 244, 30},
		{"dhaka", "sylhet", 196, 25},
		{"dhaka", "bagerhat", 280, 35},
		{"dhaka", "narshingdi", 50, 15},
		{"chittagong", "dhaka", 244, 30},
		{"chittagong", "sylhet", 168, 20},
		{"chittagong", "bagerhat", 320, 40},
		{"chittagong", "narshingdi", 200, 25},
		{"sylhet", "dhaka", 196, 25},
		{"sylhet", "chittagong", 168, 20},
		{"sylhet", "bagerhat", 400, 50},
		{"sylhet", "narshingdi", 180, 22},
		{"bagerhat", "dhaka", 280, 35},
		{"bagerhat", "chittagong", 320, 40},
		{"bagerhat", "sylhet", 400, 50},
		{"bagerhat", "narshingdi", 250, 30},
		{"narshingdi", "dhaka", 50, 15},
		{"narshingdi", "chittagong", 200, 25},
		{"narshingdi", "sylhet", 180, 22},
		{"narshingdi", "bagerhat", 250, 30},
	} {
		key, rate := route(r.origin, r.destination, r.distanceKm, r.rate)
		routes[key] = rate
	}

	return Tariff{
		BaseRates: map[SpeedTier]int{
			Standard: 50,
			Express:  80,
			SameDay:  150,
		},
		SpeedSurcharges: map[SpeedTier]int{
			Standard: 0,
			Express:  20,
			SameDay:  50,
		},
		DeliveryTimes: map[SpeedTier]string{
			Standard: "2-3 business days",
			Express:  "Next business day",
			SameDay:  "Within 6 hours",
		},
		WeightCharges: map[WeightBand]int{
			WeightUpToHalfKg:  0,
			WeightHalfToOneKg: 10,
			WeightOneToTwoKg:  20,
			WeightTwoToFiveKg: 35,
			WeightOverFiveKg:  60,
		},
		HandlingFees: map[PackageType]int{
			Document:    5,
			Parcel:      10,
			Fragile:     25,
			Electronics: 20,
		},
		Routes:         routes,
		FallbackRoute:  RouteRate{DistanceKm: 100, Rate: 20},
		TaxRatePercent: 15,
	}
}

// Validate checks that the tariff covers every valid enumeration value with
// non-negative figures and that weight charges do not decrease across bands.
func (t Tariff) Validate() error {
	for tier := range getValidSpeedTierStrings() {
		if rate, ok := t.BaseRates[tier]; !ok || rate < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"tariff.baseRates", fmt.Errorf("missing or negative base rate for %s", tier),
			)
		}
		if surcharge, ok := t.SpeedSurcharges[tier]; !ok || surcharge < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"tariff.speedSurcharges", fmt.Errorf("missing or negative surcharge for %s", tier),
			)
		}
		if estimate, ok := t.DeliveryTimes[tier]; !ok || estimate == "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"tariff.deliveryTimes", fmt.Errorf("missing delivery time estimate for %s", tier),
			)
		}
	}

	previous := -1
	for _, band := range AllWeightBands() {
		charge, ok := t.WeightCharges[band]
		if !ok || charge < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"tariff.weightCharges", fmt.Errorf("missing or negative charge for band %s", band),
			)
		}
		if charge < previous {
			return errs.NewValueIsInvalidErrorWithCause(
				"tariff.weightCharges", fmt.Errorf("charge for band %s breaks monotonicity", band),
			)
		}
		previous = charge
	}

	for packageType := range getValidPackageTypeStrings() {
		if fee, ok := t.HandlingFees[packageType]; !ok || fee < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"tariff.handlingFees", fmt.Errorf("missing or negative handling fee for %s", packageType),
			)
		}
	}

	if t.FallbackRoute.Rate < 0 || t.FallbackRoute.DistanceKm < 0 {
		return errs.NewValueIsInvalidError("tariff.fallbackRoute")
	}
	if t.TaxRatePercent < 0 {
		return errs.NewValueIsInvalidError("tariff.taxRatePercent")
	}

	return nil
}

// RouteFor resolves the distance component for an origin/destination pair.
// Same-city shipments cost nothing in distance. A pair absent from the table
// resolves to the fallback entry rather than failing: the city set is open
// and new zones come online faster than the rate card is updated.
func (t Tariff) RouteFor(origin, destination kernel.CitySlug) RouteRate {
	if origin.IsEqual(destination) {
		return RouteRate{}
	}
	if rate, ok := t.Routes[RouteKey{Origin: origin, Destination: destination}]; ok {
		return rate
	}
	return t.FallbackRoute
}
