// Package order provides domain entities and business logic for shipment
// order management in the courier service. It implements the Order aggregate
// root with lifecycle management, state transitions, and an append-only
// tracking history.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, recipient and
//     shipment details, and the delivery lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - TrackingEvent: An immutable entry in the order's tracking history
//
// Key business rules:
//   - Orders must have a valid identifier and complete recipient details
//   - Status moves strictly forward through the delivery pipeline; Cancelled
//     is reachable from any non-terminal state
//   - Delivered and Cancelled are terminal
//   - Tracking history is never empty once an order exists, is append-only,
//     and carries non-decreasing system-assigned timestamps
//   - deliveredAt is set exactly once, on the transition into Delivered
package order
