package order_test

import (
	"fmt"
	"math"
	"testing"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Received))
		assert.Equal(t, 2, int(order.Validated))
		assert.Equal(t, 3, int(order.InProduction))
		assert.Equal(t, 4, int(order.InDelivery))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})

	t.Run("should count five pipeline states", func(t *testing.T) {
		assert.Equal(t, 5, order.PipelineLength)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Received,
			order.Validated,
			order.InProduction,
			order.InDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(7), order.Status(100)} {
			require.Error(t, status.Validate(), "status value %d should be invalid", int(status))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire symbols", func(t *testing.T) {
		expected := map[order.Status]string{
			order.Received:     "received",
			order.Validated:    "validated",
			order.InProduction: "in_production",
			order.InDelivery:   "in_delivery",
			order.Delivered:    "delivered",
			order.Cancelled:    "cancelled",
		}

		for status, symbol := range expected {
			assert.Equal(t, symbol, status.String())
		}
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should roundtrip all valid symbols", func(t *testing.T) {
		for _, symbol := range []string{
			"received", "validated", "in_production", "in_delivery", "delivered", "cancelled",
		} {
			status, err := order.ParseStatus(symbol)
			require.NoError(t, err)
			assert.Equal(t, symbol, status.String())
		}
	})

	t.Run("should reject unknown symbols", func(t *testing.T) {
		for _, symbol := range []string{"", "unknown", "RECEIVED", "shipped", "in delivery"} {
			_, err := order.ParseStatus(symbol)
			require.Error(t, err, "symbol %q should be rejected", symbol)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark delivered and cancelled terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should keep pipeline states non-terminal", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Received, order.Validated, order.InProduction, order.InDelivery,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should advance along the pipeline in order", func(t *testing.T) {
		sequence := []order.Status{
			order.Received, order.Validated, order.InProduction, order.InDelivery, order.Delivered,
		}

		current := sequence[0]
		for _, expected := range sequence[1:] {
			next, err := current.Next()
			require.NoError(t, err)
			assert.Equal(t, expected, next)
			current = next
		}
	})

	t.Run("should reach delivered in exactly four advances", func(t *testing.T) {
		current := order.Received
		advances := 0
		for !current.IsTerminal() {
			next, err := current.Next()
			require.NoError(t, err)
			current = next
			advances++
		}

		assert.Equal(t, 4, advances)
		assert.Equal(t, order.Delivered, current)
	})

	t.Run("should never target cancelled", func(t *testing.T) {
		current := order.Received
		for !current.IsTerminal() {
			next, err := current.Next()
			require.NoError(t, err)
			assert.NotEqual(t, order.Cancelled, next)
			current = next
		}
	})

	t.Run("should fail on terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := status.Next()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)

			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, status.String(), transitionErr.From)
		}
	})

	t.Run("should fail on invalid statuses", func(t *testing.T) {
		_, err := order.Unknown.Next()
		require.Error(t, err)
	})
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("should allow cancellation from any pipeline state", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Received, order.Validated, order.InProduction, order.InDelivery,
		} {
			next, err := status.ChangeTo(order.Cancelled)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("should treat same-status change as no-op", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Received, order.InDelivery, order.Delivered, order.Cancelled,
		} {
			next, err := status.ChangeTo(status)
			require.NoError(t, err)
			assert.Equal(t, status, next)
		}
	})

	t.Run("should reject changes away from terminal statuses", func(t *testing.T) {
		testCases := []struct {
			from, to order.Status
		}{
			{order.Delivered, order.Received},
			{order.Delivered, order.Cancelled},
			{order.Cancelled, order.Received},
			{order.Cancelled, order.Delivered},
		}

		for _, tc := range testCases {
			_, err := tc.from.ChangeTo(tc.to)
			require.ErrorIs(t, err, errs.ErrInvalidTransition,
				"%s -> %s should be rejected", tc.from, tc.to)
		}
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		_, err := order.Received.ChangeTo(order.Unknown)
		require.Error(t, err)

		_, err = order.Received.ChangeTo(order.Status(42))
		require.Error(t, err)
	})
}

func TestStatus_DisplayInfo(t *testing.T) {
	t.Run("should expose labels colors and icons", func(t *testing.T) {
		expected := map[order.Status]order.DisplayInfo{
			order.Received:     {Label: "Reçue", Color: "#D4AF37", Icon: "package", ProgressFraction: 0},
			order.Validated:    {Label: "Validée", Color: "#27AE60", Icon: "check", ProgressFraction: 0.25},
			order.InProduction: {Label: "En production", Color: "#E67E22", Icon: "clock", ProgressFraction: 0.5},
			order.InDelivery:   {Label: "En route", Color: "#3498db", Icon: "truck", ProgressFraction: 0.75},
			order.Delivered:    {Label: "Livrée", Color: "#2ecc71", Icon: "check-circle", ProgressFraction: 1},
		}

		for status, want := range expected {
			info := status.DisplayInfo()
			assert.Equal(t, want.Label, info.Label)
			assert.Equal(t, want.Color, info.Color)
			assert.Equal(t, want.Icon, info.Icon)
			assert.InDelta(t, want.ProgressFraction, info.ProgressFraction, 1e-9)
		}
	})

	t.Run("should grow progress strictly along the pipeline", func(t *testing.T) {
		pipeline := []order.Status{
			order.Received, order.Validated, order.InProduction, order.InDelivery, order.Delivered,
		}

		previous := -1.0
		for _, status := range pipeline {
			fraction := status.DisplayInfo().ProgressFraction
			assert.Greater(t, fraction, previous, "%s should advance the progress bar", status)
			previous = fraction
		}

		assert.InDelta(t, 0, pipeline[0].DisplayInfo().ProgressFraction, 1e-9)
		assert.InDelta(t, 1, pipeline[len(pipeline)-1].DisplayInfo().ProgressFraction, 1e-9)
	})

	t.Run("should leave cancelled progress undefined", func(t *testing.T) {
		info := order.Cancelled.DisplayInfo()

		assert.Equal(t, "Annulée", info.Label)
		assert.Equal(t, "#e74c3c", info.Color)
		assert.Equal(t, "x", info.Icon)
		assert.True(t, math.IsNaN(info.ProgressFraction))
	})
}

func TestStatus_PipelineIndex(t *testing.T) {
	t.Run("should index pipeline states", func(t *testing.T) {
		expected := map[order.Status]int{
			order.Received:     0,
			order.Validated:    1,
			order.InProduction: 2,
			order.InDelivery:   3,
			order.Delivered:    4,
		}

		for status, want := range expected {
			index, ok := status.PipelineIndex()
			require.True(t, ok)
			assert.Equal(t, want, index)
		}
	})

	t.Run("should exclude cancelled and unknown", func(t *testing.T) {
		_, ok := order.Cancelled.PipelineIndex()
		assert.False(t, ok)

		_, ok = order.Unknown.PipelineIndex()
		assert.False(t, ok)
	})
}
