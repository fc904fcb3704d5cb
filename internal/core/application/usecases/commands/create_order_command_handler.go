package commands

import (
	"context"
	"time"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/domain/services"
	"attieke/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Computes the delivery fee from the tariff (unless overridden), fixes the
// total, persists the order in Received status, and publishes a change
// event once the transaction commits.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, tariff, stream)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("order %s: fee %d, total %d", created.ID(), created.DeliveryFee(), created.Total())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tariff     services.Tariff
	stream     ports.OrderStream
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a unit of work factory for transactional persistence, the
// delivery tariff and the order event stream.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tariff services.Tariff,
	stream ports.OrderStream,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
		stream:     stream,
	}
}

// Handle processes the order placement command.
// Returns the created aggregate so callers can render the computed fee and
// total. The UI must not assume success before this returns: the event and
// the return value both reflect committed state only.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	fee := h.tariff.FeeFor(cmd.City(), cmd.Country())
	if override := cmd.FeeOverride(); override != nil {
		fee = *override
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.ClientName(),
		cmd.ClientPhone(),
		cmd.Address(),
		cmd.City(),
		cmd.Country(),
		cmd.AttiekeType(),
		cmd.Amount(),
		fee,
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.stream.Publish(ports.OrderEvent{
		Kind:       ports.OrderStatusChanged,
		OrderID:    newOrder.ID(),
		ClientID:   newOrder.ClientID(),
		Status:     newOrder.Status(),
		OccurredAt: now,
	})

	return newOrder, nil
}
