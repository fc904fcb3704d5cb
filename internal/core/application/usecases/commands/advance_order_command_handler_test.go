package commands_test

import (
	"context"
	"testing"

	"attieke/internal/core/application/usecases/commands"
	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/domain/services"
	"attieke/internal/core/ports"
	"attieke/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeOrder seeds a committed order through the create handler.
func placeOrder(t *testing.T, env testEnv, city, country string) *order.Order {
	t.Helper()

	handler := commands.NewCreateOrderCommandHandler(
		env.uowFactory, services.NewDefaultTariff(), env.stream)
	created, err := handler.Handle(context.Background(),
		newCreateCommand(t, city, country, 2000, nil))
	require.NoError(t, err)
	return created
}

func advanceCommandFor(t *testing.T, id kernel.UUID) commands.AdvanceOrderCommand {
	t.Helper()

	cmd, err := commands.NewAdvanceOrderCommand(id)
	require.NoError(t, err)
	return cmd
}

func TestAdvanceOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should walk an order to delivered in four advances", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Abidjan", "Côte d'Ivoire")
		handler := commands.NewAdvanceOrderCommandHandler(env.uowFactory, env.stream)
		cmd := advanceCommandFor(t, created.ID())

		expected := []order.Status{
			order.Validated, order.InProduction, order.InDelivery, order.Delivered,
		}
		for _, status := range expected {
			advanced, err := handler.Handle(context.Background(), cmd)
			require.NoError(t, err)
			assert.Equal(t, status, advanced.Status())
		}

		stored := env.getOrder(t, created.ID())
		assert.Equal(t, order.Delivered, stored.Status())
	})

	t.Run("should persist the delivery anchor when entering in_delivery", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Abidjan", "Côte d'Ivoire")
		handler := commands.NewAdvanceOrderCommandHandler(env.uowFactory, env.stream)
		cmd := advanceCommandFor(t, created.ID())

		for range 3 {
			_, err := handler.Handle(context.Background(), cmd)
			require.NoError(t, err)
		}

		stored := env.getOrder(t, created.ID())
		assert.Equal(t, order.InDelivery, stored.Status())
		assert.NotNil(t, stored.InDeliveryAt())
	})

	t.Run("should publish one event per advance", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Abidjan", "Côte d'Ivoire")
		events, cancel := env.stream.Subscribe(ports.OrderEventFilter{})
		defer cancel()

		handler := commands.NewAdvanceOrderCommandHandler(env.uowFactory, env.stream)
		advanced, err := handler.Handle(context.Background(), advanceCommandFor(t, created.ID()))
		require.NoError(t, err)

		published := drainEvents(events)
		require.Len(t, published, 1)
		assert.Equal(t, ports.OrderStatusChanged, published[0].Kind)
		assert.Equal(t, advanced.Status(), published[0].Status)
		assert.True(t, published[0].ClientID.IsEqual(created.ClientID()))
	})

	t.Run("should fail on a delivered order without publishing", func(t *testing.T) {
		env := newTestEnv()
		created := placeOrder(t, env, "Abidjan", "Côte d'Ivoire")
		handler := commands.NewAdvanceOrderCommandHandler(env.uowFactory, env.stream)
		cmd := advanceCommandFor(t, created.ID())
		for range 4 {
			_, err := handler.Handle(context.Background(), cmd)
			require.NoError(t, err)
		}

		events, cancel := env.stream.Subscribe(ports.OrderEventFilter{})
		defer cancel()

		_, err := handler.Handle(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Empty(t, drainEvents(events))

		stored := env.getOrder(t, created.ID())
		assert.Equal(t, order.Delivered, stored.Status())
	})

	t.Run("should fail for a nonexistent order", func(t *testing.T) {
		env := newTestEnv()
		handler := commands.NewAdvanceOrderCommandHandler(env.uowFactory, env.stream)

		_, err := handler.Handle(context.Background(), advanceCommandFor(t, kernel.NewUUID()))

		require.Error(t, err)
		var notFoundErr *errs.ObjectNotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		env := newTestEnv()
		handler := commands.NewAdvanceOrderCommandHandler(env.uowFactory, env.stream)

		_, err := handler.Handle(context.Background(), commands.AdvanceOrderCommand{})

		require.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
	})
}
