package commands

import (
	"context"
	"time"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order one step along the pipeline.
// The state machine validates the transition before anything is written,
// so a terminal order fails with InvalidTransition and stored state stays
// untouched. Invalid transitions are surfaced to the caller, never retried.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	stream     ports.OrderStream
}

// NewAdvanceOrderCommandHandler creates a handler for pipeline advancement.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, stream ports.OrderStream) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle processes the advance command and returns the updated aggregate.
// Load, transition and update run in one transaction; the change event is
// published only after the commit succeeds.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	now := time.Now().UTC()
	if err = aggregate.Advance(now); err != nil {
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
