package order

import (
	"errors"
	"time"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTrackingHistoryIsEmpty is returned when an order is restored without
	// any tracking history. History is never empty once an order exists.
	ErrTrackingHistoryIsEmpty = errors.New("order tracking history must not be empty")
)

// DefaultPickupAddress is used when a booking does not name a pickup location.
const DefaultPickupAddress = "Default Pickup Location"

// Details carries the descriptive attributes of an order: who receives it,
// where it travels, and what it contains. It is a parameter object for the
// Order constructors; the aggregate keeps its own private copy.
type Details struct {
	RecipientName           string
	RecipientPhone          string
	RecipientSecondaryPhone string
	RecipientAddress        string
	DeliveryArea            string
	PickupAddress           string
	DeliveryAddress         string
	AmountToCollect         int
	SpeedTier               pricing.SpeedTier
	PackageType             pricing.PackageType
	WeightBand              pricing.WeightBand
	Quantity                int
	ItemDescription         string
	SpecialInstructions     string
	CreatedBy               string
}

// Order represents a shipment order in the system. It is the aggregate root that
// manages the order lifecycle from creation through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Recipient name, phone, address, delivery area, and item description are required
//   - Status transitions follow the delivery state machine
//   - Tracking history is append-only, never empty, with non-decreasing timestamps
//   - deliveredAt is set exactly once, on the transition into Delivered
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the public identifier for the order
	id kernel.OrderID

	// details holds the descriptive shipment attributes
	details Details

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was created
	createdAt time.Time

	// updatedAt is refreshed on every successful mutation
	updatedAt time.Time

	// deliveredAt is set once, when the order transitions into Delivered
	deliveredAt *time.Time

	// trackingHistory is the ordered, append-only event log
	trackingHistory []TrackingEvent

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with status Pending and a single confirmation
// tracking event stamped at createdAt. This is the only way to create a fresh
// order, ensuring all business invariants hold from the first moment.
//
// Missing pickup and delivery addresses are defaulted: pickup to
// DefaultPickupAddress, delivery to the recipient address.
//
// Parameters:
//   - id: Public identifier for the order (must be constructed)
//   - details: Recipient and shipment attributes (required fields must be set)
//   - createdAt: Creation time from the store's clock
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors if any attribute is invalid
func NewOrder(id kernel.OrderID, details Details, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	confirmation, err := newConfirmationEvent(createdAt)
	if err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	order.updatedAt = createdAt
	order.trackingHistory = []TrackingEvent{confirmation}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It runs the same
// attribute validation as NewOrder but accepts the stored status, timestamps,
// and tracking history instead of initializing them.
//
// The history must be non-empty; its events are assumed to be in append order
// as stored.
func RestoreOrder(
	id kernel.OrderID,
	details Details,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	deliveredAt *time.Time,
	history []TrackingEvent,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrTrackingHistoryIsEmpty
	}
	for _, event := range history {
		if err := event.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	if deliveredAt != nil {
		at := *deliveredAt
		order.deliveredAt = &at
	}
	order.trackingHistory = append([]TrackingEvent(nil), history...)

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's public identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Details returns a copy of the order's descriptive attributes.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeliveredAt returns when the order was delivered, or nil if it has not been.
// The returned pointer is a copy; mutating it does not affect the order.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	at := *o.deliveredAt
	return &at
}

// TrackingHistory returns a copy of the order's tracking event log in append
// order. Callers never receive a mutable reference into the aggregate.
func (o *Order) TrackingHistory() []TrackingEvent {
	return append([]TrackingEvent(nil), o.trackingHistory...)
}

// ChangeStatus transitions the order to the target status.
//
// This method enforces the state machine in Status.TransitionTo: strictly
// forward moves and cancellation from non-terminal states. On the transition
// into Delivered, deliveredAt is recorded exactly once. updatedAt is
// refreshed on success; on failure the order is left untouched.
//
// Parameters:
//   - target: The requested status
//   - at: The mutation time from the store's clock
//
// Returns:
//   - nil on a successful transition
//   - *errs.InvalidTransitionError if the state machine forbids the move
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered && o.deliveredAt == nil {
		deliveredAt := at
		o.deliveredAt = &deliveredAt
	}
	o.updatedAt = at
	return nil
}

// AppendTrackingEvent appends one event to the tracking history.
//
// The event is re-stamped with the store clock's time before appending;
// caller-supplied timestamps are never trusted. If the clock reads earlier
// than the last recorded event, the new event is clamped to the last
// timestamp so history stays non-decreasing. Existing events are never
// rewritten or removed.
func (o *Order) AppendTrackingEvent(event TrackingEvent, at time.Time) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("trackingEvent.timestamp")
	}

	stampedAt := at
	if last := o.trackingHistory[len(o.trackingHistory)-1].Timestamp(); stampedAt.Before(last) {
		stampedAt = last
	}

	o.trackingHistory = append(o.trackingHistory, event.withTimestamp(stampedAt))
	o.updatedAt = at
	return nil
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setDetails validates and sets the order's descriptive attributes,
// applying pickup and delivery address defaults.
// This is a private method used only during construction.
func (o *Order) setDetails(details Details) error {
	var violations []error
	if details.RecipientName == "" {
		violations = append(violations, errs.NewValueIsRequiredError("recipientName"))
	}
	if details.RecipientPhone == "" {
		violations = append(violations, errs.NewValueIsRequiredError("recipientPhone"))
	}
	if details.RecipientAddress == "" {
		violations = append(violations, errs.NewValueIsRequiredError("recipientAddress"))
	}
	if details.DeliveryArea == "" {
		violations = append(violations, errs.NewValueIsRequiredError("deliveryArea"))
	}
	if details.ItemDescription == "" {
		violations = append(violations, errs.NewValueIsRequiredError("itemDescription"))
	}
	if err := details.SpeedTier.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := details.PackageType.Validate(); err != nil {
		violations = append(violations, err)
	}
	if err := details.WeightBand.Validate(); err != nil {
		violations = append(violations, err)
	}
	if details.Quantity < 1 {
		violations = append(violations, errs.NewValueIsOutOfRangeError("quantity", details.Quantity, 1, 1000))
	}
	if details.AmountToCollect < 0 {
		violations = append(violations, errs.NewValueIsInvalidError("amountToCollect"))
	}
	if err := errors.Join(violations...); err != nil {
		return err
	}

	if details.PickupAddress == "" {
		details.PickupAddress = DefaultPickupAddress
	}
	if details.DeliveryAddress == "" {
		details.DeliveryAddress = details.RecipientAddress
	}

	o.details = details
	return nil
}
