package order

import (
	"fmt"

	"genzdeliver/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ─> Accepted ─> PickedUp ─> InTransit ─> OutForDelivery ─> Delivered
//	    │          │           │           │               │
//	    └──────────┴───────────┴───────────┴───────────────┴──> Cancelled
//
// Forward jumps that skip intermediate states are allowed (a courier may scan
// a package straight from Accepted to InTransit); moving backwards is not.
// Delivered and Cancelled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Accepted indicates the order has been accepted for pickup.
	Accepted

	// PickedUp indicates the package has been collected from the sender.
	PickedUp

	// InTransit indicates the package is moving between hubs.
	InTransit

	// OutForDelivery indicates the package is on the final delivery leg.
	OutForDelivery

	// Delivered indicates the package reached the recipient.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// Reachable from any non-terminal state; final once entered.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		Pending:        "pending",
		Accepted:       "accepted",
		PickedUp:       "picked",
		InTransit:      "in-transit",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Accepted:       "accepted",
		PickedUp:       "picked",
		InTransit:      "in-transit",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a status from its wire form, for example "in-transit".
// Returns an error naming the status field for any value outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, PickedUp, InTransit, OutForDelivery,
// Delivered, Cancelled. StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire form of the status, for example "out-for-delivery".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones, which render
// as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a status change and returns the new status.
//
// Valid transitions:
//   - any strictly forward move along the delivery pipeline, including jumps
//     that skip intermediate states (e.g. Pending -> Delivered)
//   - any non-terminal status -> Cancelled
//
// Invalid transitions:
//   - leaving Delivered or Cancelled
//   - moving backwards or re-entering the current status
//   - any transition involving an invalid status value
//
// Returns:
//   - (target, nil) on a valid transition
//   - (StatusUnknown, *errs.InvalidTransitionError) carrying the attempted
//     from/to pair otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(), fmt.Errorf("%s is a terminal status", s),
		)
	}

	if target == Cancelled {
		return Cancelled, nil
	}

	if target > s {
		return target, nil
	}

	return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
}
