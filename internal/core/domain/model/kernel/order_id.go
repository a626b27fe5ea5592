package kernel

import (
	"fmt"
	"regexp"

	"genzdeliver/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// orderIDPattern matches the public order identifier format: the "ORD-" prefix
// followed by twelve uppercase hexadecimal characters.
var orderIDPattern = regexp.MustCompile(`^ORD-[0-9A-F]{12}$`)

// OrderID is a value object that represents the public identifier of an order.
// It is the identifier customers see on receipts and use for tracking, which is
// why it is a short human-readable token rather than a raw UUID.
//
// The token carries 48 bits of randomness drawn from a version 4 UUID. That is
// not enough to rule out collisions over the lifetime of the store on its own,
// so the order repository enforces uniqueness at insert time and creation
// retries with a fresh token on a duplicate.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString.
//
// Example usage:
//
//	// Generate a new identifier
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g., "ORD-3F9A2C44B1D0"
//
//	// Parse an identifier received from the API
//	id, err := kernel.OrderIDFromString("ORD-3F9A2C44B1D0")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier.
// The token is derived from the first six bytes of a version 4 UUID,
// formatted as "ORD-" plus twelve uppercase hexadecimal characters.
func NewOrderID() OrderID {
	id := uuid.New()
	return OrderID{
		value: fmt.Sprintf("ORD-%X", id[:6]),
	}
}

// OrderIDFromString parses an order identifier from its string representation.
// Returns an error if the string does not match the "ORD-" token format.
// This function is typically used when reconstructing orders from persistence
// or when parsing identifiers from API requests.
func OrderIDFromString(s string) (OrderID, error) {
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%q is not a valid order identifier", s),
		)
	}
	return OrderID{value: s}, nil
}

// String returns the string representation of the order identifier,
// for example "ORD-3F9A2C44B1D0". For a zero value OrderID this returns
// the empty string.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
