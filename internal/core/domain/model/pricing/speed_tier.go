package pricing

import (
	"fmt"

	"genzdeliver/internal/pkg/errs"
)

// SpeedTier represents the delivery speed class of a shipment.
// It is a closed enumeration: every billable shipment is exactly one of
// Standard, Express, or SameDay, and an unknown value indicates a caller bug
// rather than a pricing fallback.
type SpeedTier int

const (
	// SpeedTierUnknown represents an invalid or undefined speed tier.
	// This value (0) helps catch uninitialized SpeedTier values.
	SpeedTierUnknown SpeedTier = iota

	// Standard is the regular delivery service, typically 2-3 business days.
	Standard

	// Express is next-business-day delivery.
	Express

	// SameDay is same-day delivery within a few hours.
	SameDay
)

// getSpeedTierStrings returns a map of SpeedTier values to their wire representations.
// The wire forms match the public API and the stored order records.
func getSpeedTierStrings() map[SpeedTier]string {
	return map[SpeedTier]string{
		SpeedTierUnknown: "unknown",
		Standard:         "normal",
		Express:          "express",
		SameDay:          "same-day",
	}
}

// getValidSpeedTierStrings returns a map of only valid SpeedTier values.
func getValidSpeedTierStrings() map[SpeedTier]string {
	//nolint:exhaustive // SpeedTierUnknown is intentionally excluded as it's invalid
	return map[SpeedTier]string{
		Standard: "normal",
		Express:  "express",
		SameDay:  "same-day",
	}
}

// SpeedTierFromString parses a speed tier from its wire form.
// Accepted values are "normal", "express", and "same-day".
// Returns an error naming the deliveryType field for any other input,
// since the set is closed.
func SpeedTierFromString(s string) (SpeedTier, error) {
	for tier, str := range getValidSpeedTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return SpeedTierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryType", fmt.Errorf("%q is not a valid speed tier", s),
	)
}

// Validate checks if the SpeedTier value is valid.
// Valid tiers are Standard, Express, and SameDay.
func (t SpeedTier) Validate() error {
	if _, ok := getValidSpeedTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryType", fmt.Errorf("%d is not a valid speed tier", t),
		)
	}
	return nil
}

// String returns the wire form of the speed tier: "normal", "express",
// or "same-day". Invalid values render as "unknown".
func (t SpeedTier) String() string {
	if str, ok := getSpeedTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}
