package commands

import (
	"errors"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents the seller's "move to next step" action:
// it advances an order one position along the pipeline. Advancement never
// targets cancellation; use ChangeOrderStatusCommand for that.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// Validates that the order ID is a properly constructed UUID.
func NewAdvanceOrderCommand(orderID kernel.UUID) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
