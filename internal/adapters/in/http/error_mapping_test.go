package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"attieke/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestServer_writeError(t *testing.T) {
	server := &Server{}

	t.Run("should map store unavailability to 503", func(t *testing.T) {
		// A wrapped driver failure is retryable; the status must say so
		// instead of the generic 500 reserved for logic bugs.
		ctx, rec := newErrorContext(t)
		cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

		err := server.writeError(ctx, errs.NewStoreUnavailableError("get order", cause))

		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("should map object not found to 404", func(t *testing.T) {
		ctx, rec := newErrorContext(t)

		err := server.writeError(ctx, errs.NewObjectNotFoundError("order", "123"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should map invalid transitions to 409", func(t *testing.T) {
		ctx, rec := newErrorContext(t)

		err := server.writeError(ctx, errs.NewInvalidTransitionError("delivered", "received"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map validation failures to 400", func(t *testing.T) {
		validationErrors := []error{
			errs.NewValueIsInvalidError("amount"),
			errs.NewValueIsRequiredError("city"),
			errs.NewValueIsOutOfRangeError("points", 1, 2, 64),
		}

		for _, validationErr := range validationErrors {
			ctx, rec := newErrorContext(t)

			err := server.writeError(ctx, validationErr)

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "error %v", validationErr)
		}
	})

	t.Run("should map unclassified errors to 500", func(t *testing.T) {
		ctx, rec := newErrorContext(t)

		err := server.writeError(ctx, errors.New("boom"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
