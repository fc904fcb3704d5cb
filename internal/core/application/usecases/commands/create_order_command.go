package commands

import (
	"errors"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"
	"attieke/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to place a new order.
// Encapsulates the destination, the ordered variety and the amount, plus an
// optional manual delivery-fee override (used by the seller for discounts;
// when absent the tariff computes the fee from the destination).
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), clientID,
//	    "Marie Koné", "0505050505", "Cocody", "Abidjan", "Côte d'Ivoire",
//	    order.TypeAbodjaman, 2500, nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	clientName  string
	clientPhone string
	address     string
	city        string
	country     string
	attiekeType order.AttiekeType
	amount      int
	feeOverride *int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, required contact and destination fields, the
// variety and the amount. feeOverride may be nil (tariff applies) or a
// non-negative amount in F CFA.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	clientName string,
	clientPhone string,
	address string,
	city string,
	country string,
	attiekeType order.AttiekeType,
	amount int,
	feeOverride *int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientPhone: clientPhone,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setClientName(clientName),
		cmd.setDestination(city, country),
		cmd.setAttiekeType(attiekeType),
		cmd.setAmount(amount),
		cmd.setFeeOverride(feeOverride),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the ordering customer.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ClientName returns the contact name.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// ClientPhone returns the contact phone.
func (c CreateOrderCommand) ClientPhone() string {
	return c.clientPhone
}

// Address returns the free-form street detail.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// City returns the destination city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Country returns the destination country.
func (c CreateOrderCommand) Country() string {
	return c.country
}

// AttiekeType returns the ordered variety.
func (c CreateOrderCommand) AttiekeType() order.AttiekeType {
	return c.attiekeType
}

// Amount returns the order value in F CFA.
func (c CreateOrderCommand) Amount() int {
	return c.amount
}

// FeeOverride returns the manual delivery fee, or nil when the tariff
// should compute it.
func (c CreateOrderCommand) FeeOverride() *int {
	return c.feeOverride
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setDestination(city, country string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	c.city = city
	c.country = country
	return nil
}

func (c *CreateOrderCommand) setAttiekeType(attiekeType order.AttiekeType) error {
	if err := attiekeType.Validate(); err != nil {
		return err
	}

	c.attiekeType = attiekeType
	return nil
}

func (c *CreateOrderCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setFeeOverride(feeOverride *int) error {
	if feeOverride != nil && *feeOverride < 0 {
		return errs.NewValueIsInvalidError("fee override")
	}

	c.feeOverride = feeOverride
	return nil
}
