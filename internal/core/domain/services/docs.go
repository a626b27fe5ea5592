// Package services provides domain services for the courier service.
// Domain services implement business logic that doesn't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - PriceEstimator: A pure domain service that computes delivery quotes from
//     a tariff and a shipment descriptor
package services
