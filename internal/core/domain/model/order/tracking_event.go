package order

import (
	"time"

	"genzdeliver/internal/pkg/errs"
	"genzdeliver/internal/pkg/guard"
)

// ConfirmationLabel is the label of the tracking event appended when an order
// is created.
const ConfirmationLabel = "Order confirmed"

// confirmationDescription accompanies the creation event.
const confirmationDescription = "Order has been confirmed and is being processed"

// TrackingEvent is one immutable entry in an order's tracking history:
// a status label, a system-assigned timestamp, and optional location and
// description. Labels are free-form display strings ("Picked up",
// "Arrived at Tejgaon hub"), not the closed Status enumeration, because hubs
// report waypoints that have no lifecycle significance.
//
// Timestamps are always assigned by the store at append time, never supplied
// by callers.
type TrackingEvent struct { //nolint:recvcheck //using for validation
	statusLabel string
	timestamp   time.Time
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewTrackingEvent creates a tracking history entry.
// The label is required; location and description may be empty.
// The timestamp must be non-zero and comes from the caller's clock,
// which in production is the store's system clock.
func NewTrackingEvent(statusLabel string, timestamp time.Time, location, description string) (TrackingEvent, error) {
	if statusLabel == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("trackingEvent.status")
	}
	if timestamp.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("trackingEvent.timestamp")
	}

	return TrackingEvent{
		statusLabel: statusLabel,
		timestamp:   timestamp,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// newConfirmationEvent builds the first history entry of a fresh order.
func newConfirmationEvent(timestamp time.Time) (TrackingEvent, error) {
	return NewTrackingEvent(ConfirmationLabel, timestamp, "", confirmationDescription)
}

// Validate ensures the event was created through the constructor.
func (e TrackingEvent) Validate() error {
	return e.guard.Validate(errs.NewValueIsRequiredError(
		"TrackingEvent must be created via NewTrackingEvent",
	))
}

// StatusLabel returns the display label of the event.
func (e TrackingEvent) StatusLabel() string {
	return e.statusLabel
}

// Timestamp returns when the event was recorded.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// Location returns where the event was recorded; empty when not reported.
func (e TrackingEvent) Location() string {
	return e.location
}

// Description returns the free-form detail of the event; may be empty.
func (e TrackingEvent) Description() string {
	return e.description
}

// withTimestamp returns a copy of the event stamped at the given time.
// Used by the aggregate to keep history timestamps non-decreasing.
func (e TrackingEvent) withTimestamp(timestamp time.Time) TrackingEvent {
	e.timestamp = timestamp
	return e
}
