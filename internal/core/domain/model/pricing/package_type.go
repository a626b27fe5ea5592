package pricing

import (
	"fmt"

	"genzdeliver/internal/pkg/errs"
)

// PackageType represents the handling category of a shipment's contents.
// It is a closed enumeration; each type carries a fixed handling fee in the
// tariff tables.
type PackageType int

const (
	// PackageTypeUnknown represents an invalid or undefined package type.
	// This value (0) helps catch uninitialized PackageType values.
	PackageTypeUnknown PackageType = iota

	// Document covers paperwork and flat envelopes.
	Document

	// Parcel covers general boxed goods.
	Parcel

	// Fragile covers items that need protective handling.
	Fragile

	// Electronics covers devices and appliances.
	Electronics
)

// getPackageTypeStrings returns a map of PackageType values to their wire representations.
func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		PackageTypeUnknown: "unknown",
		Document:           "document",
		Parcel:             "parcel",
		Fragile:            "fragile",
		Electronics:        "electronics",
	}
}

// getValidPackageTypeStrings returns a map of only valid PackageType values.
func getValidPackageTypeStrings() map[PackageType]string {
	//nolint:exhaustive // PackageTypeUnknown is intentionally excluded as it's invalid
	return map[PackageType]string{
		Document:    "document",
		Parcel:      "parcel",
		Fragile:     "fragile",
		Electronics: "electronics",
	}
}

// PackageTypeFromString parses a package type from its wire form.
// Accepted values are "document", "parcel", "fragile", and "electronics".
// Returns an error naming the productType field for any other input.
func PackageTypeFromString(s string) (PackageType, error) {
	for pt, str := range getValidPackageTypeStrings() {
		if str == s {
			return pt, nil
		}
	}
	return PackageTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"productType", fmt.Errorf("%q is not a valid package type", s),
	)
}

// Validate checks if the PackageType value is valid.
func (p PackageType) Validate() error {
	if _, ok := getValidPackageTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"productType", fmt.Errorf("%d is not a valid package type", p),
		)
	}
	return nil
}

// String returns the wire form of the package type.
// Invalid values render as "unknown".
func (p PackageType) String() string {
	if str, ok := getPackageTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}
