package order

import (
	"errors"
	"fmt"
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that manages
// the order lifecycle from submission through production and delivery.
//
// Order follows these invariants:
//   - Must have valid order and client identifiers
//   - Must have a destination city and country
//   - Amount must be positive, delivery fee non-negative
//   - Total is fixed at creation as amount + delivery fee and never recomputed
//   - Status transitions follow the pipeline rules in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Orders are never physically
// deleted: cancellation is a status value, not removal.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID identifies the customer who placed the order
	clientID kernel.UUID

	// clientName and clientPhone are denormalized contact fields,
	// immutable after creation
	clientName  string
	clientPhone string

	// address, city and country describe the delivery destination;
	// city and country drive fee computation and geocoding
	address string
	city    string
	country string

	// attiekeType is the ordered variety
	attiekeType AttiekeType

	// amount, deliveryFee and total are integer F CFA amounts
	amount      int
	deliveryFee int
	total       int

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// inDeliveryAt anchors the position simulator clock; set when the
	// order enters InDelivery, cleared if it leaves without delivering
	inDeliveryAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid order from customer input, ensuring all business invariants hold.
//
// The order starts in Received status; total is computed as
// amount + deliveryFee and fixed for the lifetime of the order even if the
// tariff changes later.
//
// Parameters:
//   - id, clientID: valid UUIDs
//   - clientName: required contact name
//   - clientPhone: optional contact phone
//   - address: optional street detail (destination defaults to the city)
//   - city, country: required destination, resolved by the geocoder
//   - attiekeType: menu variety
//   - amount: order value in F CFA, must be positive
//   - deliveryFee: computed tier or manual override, must be non-negative
//   - createdAt: creation timestamp
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	clientName string,
	clientPhone string,
	address string,
	city string,
	country string,
	attiekeType AttiekeType,
	amount int,
	deliveryFee int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Received,
		createdAt:     createdAt,
		clientPhone:   clientPhone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setClientName(clientName),
		o.setDestination(city, country),
		o.setAttiekeType(attiekeType),
		o.setAmount(amount),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	o.total = o.amount + o.deliveryFee
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any valid status and trusts the stored total,
// which is never recomputed after creation.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	clientName string,
	clientPhone string,
	address string,
	city string,
	country string,
	attiekeType AttiekeType,
	amount int,
	deliveryFee int,
	total int,
	status Status,
	createdAt time.Time,
	inDeliveryAt *time.Time,
) (*Order, error) {
	o := &Order{
		clientPhone:   clientPhone,
		address:       address,
		total:         total,
		createdAt:     createdAt,
		inDeliveryAt:  inDeliveryAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setClientName(clientName),
		o.setDestination(city, country),
		o.setAttiekeType(attiekeType),
		o.setAmount(amount),
		o.setDeliveryFee(deliveryFee),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
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

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the customer who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// ClientName returns the denormalized contact name.
func (o *Order) ClientName() string {
	return o.clientName
}

// ClientPhone returns the denormalized contact phone.
func (o *Order) ClientPhone() string {
	return o.clientPhone
}

// Address returns the free-form street detail of the destination.
func (o *Order) Address() string {
	return o.address
}

// City returns the destination city.
func (o *Order) City() string {
	return o.city
}

// Country returns the destination country.
func (o *Order) Country() string {
	return o.country
}

// AttiekeType returns the ordered variety.
func (o *Order) AttiekeType() AttiekeType {
	return o.attiekeType
}

// Amount returns the order value in F CFA.
func (o *Order) Amount() int {
	return o.amount
}

// DeliveryFee returns the delivery fee in F CFA fixed at creation.
func (o *Order) DeliveryFee() int {
	return o.deliveryFee
}

// Total returns amount + delivery fee as computed at creation time.
func (o *Order) Total() int {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// InDeliveryAt returns the time the order entered InDelivery,
// or nil if it never did (or left without delivering).
func (o *Order) InDeliveryAt() *time.Time {
	return o.inDeliveryAt
}

// Advance moves the order one step forward along the pipeline.
//
// Business rules are enforced by Status.Next: terminal orders cannot
// advance and advancement never targets Cancelled. Entering InDelivery
// stamps the simulator clock anchor with now.
//
// Returns:
//   - nil on success
//   - *errs.InvalidTransitionError if the order is already terminal
func (o *Order) Advance(now time.Time) error {
	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// ChangeStatus sets the order status directly, as used by the seller's
// manual override. Cancellation is ChangeStatus(Cancelled, now).
//
// Re-applying the current status is a no-op; a terminal order rejects any
// other target. The persisted state is only mutated after the state machine
// validates the transition, so an invalid request never corrupts the order.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	o.applyStatus(newStatus, now)
	return nil
}

// Cancel marks the order as cancelled. Fails on terminal orders.
func (o *Order) Cancel(now time.Time) error {
	return o.ChangeStatus(Cancelled, now)
}

// applyStatus commits a validated transition and maintains the delivery
// clock anchor: entering InDelivery stamps it, leaving InDelivery for
// anything but Delivered clears it (the simulation resets).
func (o *Order) applyStatus(newStatus Status, now time.Time) {
	if newStatus == InDelivery && o.status != InDelivery {
		anchor := now
		o.inDeliveryAt = &anchor
	}

	if o.status == InDelivery && newStatus != InDelivery && newStatus != Delivered {
		o.inDeliveryAt = nil
	}

	o.status = newStatus
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientID validates and sets the owning client's identifier.
func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

// setClientName validates and sets the contact name.
func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	o.clientName = clientName
	return nil
}

// setDestination validates and sets the destination city and country.
func (o *Order) setDestination(city, country string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	o.city = city
	o.country = country
	return nil
}

// setAttiekeType validates and sets the ordered variety.
func (o *Order) setAttiekeType(attiekeType AttiekeType) error {
	if err := attiekeType.Validate(); err != nil {
		return err
	}
	o.attiekeType = attiekeType
	return nil
}

// setAmount validates and sets the order value.
// Amount must be positive.
func (o *Order) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	o.amount = amount
	return nil
}

// setDeliveryFee validates and sets the delivery fee.
// The fee may be zero (home-city deliveries are free) but never negative.
func (o *Order) setDeliveryFee(deliveryFee int) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	o.deliveryFee = deliveryFee
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
