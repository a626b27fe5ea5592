package services

import (
	"fmt"

	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/pkg/errs"
)

// PriceEstimator is a domain service that computes a delivery quote for a
// shipment. It is a pure function of its inputs: no side effects, no I/O,
// identical input always yields an identical quote, and it is safe to call
// from any number of concurrent goroutines.
//
// The computation applies the tariff components in a fixed additive order:
// base rate, distance cost, speed surcharge, weight charge, handling fee.
// Service tax (rounded half-up) is applied to that subtotal, and the final
// total is rounded half-up to the nearest multiple of 5.
//
// Example usage:
//
//	estimator := services.NewPriceEstimator()
//	spec, _ := pricing.NewShipmentSpec(origin, destination,
//	    pricing.Standard, pricing.Parcel, pricing.WeightHalfToOneKg)
//
//	quote, err := estimator.Estimate(tariff, spec)
//	if err != nil {
//	    // Tariff does not cover the spec: caller bug or broken tariff
//	    return err
//	}
//	fmt.Printf("total %d, delivered %s", quote.Total, quote.EstimatedDeliveryTime)
type PriceEstimator struct{}

// NewPriceEstimator creates a new PriceEstimator instance.
func NewPriceEstimator() PriceEstimator {
	return PriceEstimator{}
}

// Estimate computes the quote for a shipment under the given tariff.
//
// An unknown city pair is priced through the tariff's fallback route entry.
// A spec that was not constructed through NewShipmentSpec, or a tariff that
// does not cover one of the spec's enumeration values, fails with an
// invalid-value error naming the offending field; those sets are closed, so
// a miss indicates a caller bug rather than a pricing case.
func (e PriceEstimator) Estimate(tariff pricing.Tariff, spec pricing.ShipmentSpec) (pricing.Quote, error) {
	if err := spec.Validate(); err != nil {
		return pricing.Quote{}, err
	}

	baseRate, ok := tariff.BaseRates[spec.SpeedTier()]
	if !ok {
		return pricing.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveryType", fmt.Errorf("tariff has no base rate for %s", spec.SpeedTier()),
		)
	}

	speedSurcharge, ok := tariff.SpeedSurcharges[spec.SpeedTier()]
	if !ok {
		return pricing.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveryType", fmt.Errorf("tariff has no surcharge for %s", spec.SpeedTier()),
		)
	}

	deliveryTime, ok := tariff.DeliveryTimes[spec.SpeedTier()]
	if !ok {
		return pricing.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveryType", fmt.Errorf("tariff has no delivery time for %s", spec.SpeedTier()),
		)
	}

	weightCharge, ok := tariff.WeightCharges[spec.WeightBand()]
	if !ok {
		return pricing.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"totalWeight", fmt.Errorf("tariff has no charge for band %s", spec.WeightBand()),
		)
	}

	handlingFee, ok := tariff.HandlingFees[spec.PackageType()]
	if !ok {
		return pricing.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"productType", fmt.Errorf("tariff has no handling fee for %s", spec.PackageType()),
		)
	}

	quote := pricing.Quote{
		BaseRate:              baseRate,
		DistanceCost:          tariff.RouteFor(spec.Origin(), spec.Destination()).Rate,
		SpeedSurcharge:        speedSurcharge,
		WeightCharge:          weightCharge,
		HandlingFee:           handlingFee,
		EstimatedDeliveryTime: deliveryTime,
	}

	subtotal := quote.Subtotal()
	quote.ServiceTax = roundHalfUpPercent(subtotal, tariff.TaxRatePercent)
	quote.Total = roundToNearestFive(subtotal + quote.ServiceTax)

	return quote, nil
}

// roundHalfUpPercent computes value*percent/100 rounded half-up.
// Inputs are non-negative whole currency units.
func roundHalfUpPercent(value, percent int) int {
	return (value*percent + 50) / 100
}

// roundToNearestFive rounds a non-negative amount half-up to the nearest
// multiple of 5, so 113 becomes 115 and 327 becomes 325.
func roundToNearestFive(value int) int {
	remainder := value % 5
	if remainder >= 3 {
		return value + 5 - remainder
	}
	return value - remainder
}
