package pricing

import (
	"fmt"

	"genzdeliver/internal/pkg/errs"
)

// WeightBand represents the bucketed weight range of a shipment.
// Bands are ordered: a higher band never carries a lower surcharge in a valid
// tariff. The enumeration is closed; weights outside the listed buckets fall
// into WeightOverFiveKg by the caller's choice, never by silent coercion here.
type WeightBand int

const (
	// WeightBandUnknown represents an invalid or undefined weight band.
	// This value (0) helps catch uninitialized WeightBand values.
	WeightBandUnknown WeightBand = iota

	// WeightUpToHalfKg covers shipments up to 0.5 kg.
	WeightUpToHalfKg

	// WeightHalfToOneKg covers shipments between 0.5 and 1 kg.
	WeightHalfToOneKg

	// WeightOneToTwoKg covers shipments between 1 and 2 kg.
	WeightOneToTwoKg

	// WeightTwoToFiveKg covers shipments between 2 and 5 kg.
	WeightTwoToFiveKg

	// WeightOverFiveKg covers shipments above 5 kg.
	WeightOverFiveKg
)

// getWeightBandStrings returns a map of WeightBand values to their wire representations.
func getWeightBandStrings() map[WeightBand]string {
	return map[WeightBand]string{
		WeightBandUnknown: "unknown",
		WeightUpToHalfKg:  "0-0.5",
		WeightHalfToOneKg: "0.5-1",
		WeightOneToTwoKg:  "1-2",
		WeightTwoToFiveKg: "2-5",
		WeightOverFiveKg:  "5+",
	}
}

// getValidWeightBandStrings returns a map of only valid WeightBand values.
func getValidWeightBandStrings() map[WeightBand]string {
	//nolint:exhaustive // WeightBandUnknown is intentionally excluded as it's invalid
	return map[WeightBand]string{
		WeightUpToHalfKg:  "0-0.5",
		WeightHalfToOneKg: "0.5-1",
		WeightOneToTwoKg:  "1-2",
		WeightTwoToFiveKg: "2-5",
		WeightOverFiveKg:  "5+",
	}
}

// AllWeightBands returns the valid bands in ascending weight order.
// Useful for table iteration in tariff validation and tests.
func AllWeightBands() []WeightBand {
	return []WeightBand{
		WeightUpToHalfKg,
		WeightHalfToOneKg,
		WeightOneToTwoKg,
		WeightTwoToFiveKg,
		WeightOverFiveKg,
	}
}

// WeightBandFromString parses a weight band from its wire form.
// Accepted values are "0-0.5", "0.5-1", "1-2", "2-5", and "5+".
// Returns an error naming the totalWeight field for any other input.
func WeightBandFromString(s string) (WeightBand, error) {
	for band, str := range getValidWeightBandStrings() {
		if str == s {
			return band, nil
		}
	}
	return WeightBandUnknown, errs.NewValueIsInvalidErrorWithCause(
		"totalWeight", fmt.Errorf("%q is not a valid weight band", s),
	)
}

// Validate checks if the WeightBand value is valid.
func (b WeightBand) Validate() error {
	if _, ok := getValidWeightBandStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalWeight", fmt.Errorf("%d is not a valid weight band", b),
		)
	}
	return nil
}

// String returns the wire form of the weight band, for example "0.5-1".
// Invalid values render as "unknown".
func (b WeightBand) String() string {
	if str, ok := getWeightBandStrings()[b]; ok {
		return str
	}
	return "unknown"
}
