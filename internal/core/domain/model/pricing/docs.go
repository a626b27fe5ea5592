// Package pricing provides the value objects behind delivery cost estimation:
// the closed enumerations a shipment is described with (speed tier, package
// type, weight band), the tariff tables those enumerations resolve against,
// and the quote breakdown the estimator produces.
//
// The enumerations are closed sets: an unknown value is a caller bug and fails
// validation. The tariff, in contrast, is injected configuration. Rates are
// never package-level singletons, so tests and the tariff refresh job can
// substitute tables freely.
package pricing
