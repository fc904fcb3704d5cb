package commands_test

import (
	"context"
	"testing"

	"attieke/internal/core/application/usecases/commands"
	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/ports"
	"attieke/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func changeStatusCommandFor(t *testing.T, id kernel.UUID, target order.Status) commands.ChangeOrderStatusCommand {
	t.Helper()

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	require.NoError(t, err)
	return cmd
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should jump an order forward across pipeline states", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Dakar", "Sénégal")
		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)

		changed, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.InDelivery))

		require.NoError(t, err)
		assert.Equal(t, order.InDelivery, changed.Status())
		assert.NotNil(t, changed.InDeliveryAt())

		stored := env.getOrder(t, created.ID())
		assert.Equal(t, order.InDelivery, stored.Status())
		assert.NotNil(t, stored.InDeliveryAt())
	})

	t.Run("should cancel an order in delivery and clear the anchor", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Dakar", "Sénégal")
		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)
		_, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.InDelivery))
		require.NoError(t, err)

		cancelled, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.Cancelled))

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		assert.Nil(t, cancelled.InDeliveryAt())

		stored := env.getOrder(t, created.ID())
		assert.Equal(t, order.Cancelled, stored.Status())
		assert.Nil(t, stored.InDeliveryAt())
	})

	t.Run("should treat same-status change as a silent no-op", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Dakar", "Sénégal")
		events, cancel := env.stream.Subscribe(ports.OrderEventFilter{})
		defer cancel()

		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)
		unchanged, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.Received))

		require.NoError(t, err)
		assert.Equal(t, order.Received, unchanged.Status())
		assert.Empty(t, drainEvents(events), "no-op change must not publish")
	})

	t.Run("should publish a status event after a real change", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Dakar", "Sénégal")
		events, cancel := env.stream.Subscribe(ports.OrderEventFilter{})
		defer cancel()

		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)
		_, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.Validated))
		require.NoError(t, err)

		published := drainEvents(events)
		require.Len(t, published, 1)
		assert.Equal(t, ports.OrderStatusChanged, published[0].Kind)
		assert.Equal(t, order.Validated, published[0].Status)
	})

	t.Run("should reject change away from a terminal status", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Dakar", "Sénégal")
		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)
		_, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.Cancelled))
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(),
			changeStatusCommandFor(t, created.ID(), order.Received))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		stored := env.getOrder(t, created.ID())
		assert.Equal(t, order.Cancelled, stored.Status())
	})

	t.Run("should fail for a nonexistent order", func(t *testing.T) {
		env := newTestEnv()
		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)

		_, err := handler.Handle(context.Background(),
			changeStatusCommandFor(t, kernel.NewUUID(), order.Validated))

		var notFoundErr *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		env := newTestEnv()
		handler := commands.NewChangeOrderStatusCommandHandler(env.uowFactory, env.stream)

		_, err := handler.Handle(context.Background(), commands.ChangeOrderStatusCommand{})

		require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should reject unknown target status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
		require.Error(t, err)
	})
}
