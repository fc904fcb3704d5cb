package order_test

import (
	"testing"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttiekeType_Validate(t *testing.T) {
	t.Run("should accept all menu varieties", func(t *testing.T) {
		for _, variety := range order.AllAttiekeTypes() {
			require.NoError(t, variety.Validate(), "%s should be valid", variety)
		}
	})

	t.Run("should reject unknown varieties", func(t *testing.T) {
		for _, symbol := range []string{"", "poulet", "SIMPLE", "attieke"} {
			err := order.AttiekeType(symbol).Validate()

			require.Error(t, err, "variety %q should be rejected", symbol)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParseAttiekeType(t *testing.T) {
	t.Run("should parse wire symbols", func(t *testing.T) {
		testCases := map[string]order.AttiekeType{
			"simple":    order.TypeSimple,
			"abodjaman": order.TypeAbodjaman,
			"garba":     order.TypeGarba,
		}

		for symbol, want := range testCases {
			parsed, err := order.ParseAttiekeType(symbol)
			require.NoError(t, err)
			assert.Equal(t, want, parsed)
			assert.Equal(t, symbol, parsed.String())
		}
	})

	t.Run("should reject symbols outside the menu", func(t *testing.T) {
		_, err := order.ParseAttiekeType("alloco")
		require.Error(t, err)
	})
}

func TestAllAttiekeTypes(t *testing.T) {
	t.Run("should list varieties in menu order", func(t *testing.T) {
		assert.Equal(t,
			[]order.AttiekeType{order.TypeSimple, order.TypeAbodjaman, order.TypeGarba},
			order.AllAttiekeTypes())
	})
}
