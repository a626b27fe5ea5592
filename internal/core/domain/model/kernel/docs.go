// Package kernel provides core domain primitives for the courier service.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for human-readable order identifiers with validation
//     and comparison capabilities
//   - CitySlug: A value object for normalized city identifiers shared by the
//     pricing route table and the zone reference data
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
