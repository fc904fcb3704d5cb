package commands

import (
	"context"
	"time"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/ports"
)

// ChangeOrderStatusCommandHandler sets an order's status directly, including
// cancellation. Re-applying the current status is an idempotent no-op: the
// order is not rewritten and no event is published.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	stream     ports.OrderStream
}

// NewChangeOrderStatusCommandHandler creates a handler for direct status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	stream ports.OrderStream,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle processes the status change command and returns the updated aggregate.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() == cmd.Target() {
		return aggregate, nil
	}

	now := time.Now().UTC()
	if err = aggregate.ChangeStatus(cmd.Target(), now); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.stream.Publish(ports.OrderEvent{
		Kind:       ports.OrderStatusChanged,
		OrderID:    aggregate.ID(),
		ClientID:   aggregate.ClientID(),
		Status:     aggregate.Status(),
		OccurredAt: now,
	})

	return aggregate, nil
}
