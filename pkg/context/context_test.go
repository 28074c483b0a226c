package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", GetRequestID(ctx))
}

func TestGetRequestIDFallback(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
	assert.Equal(t, "unknown", GetRequestID(WithRequestID(context.Background(), "")))
}

func TestFromFiberCtx(t *testing.T) {
	t.Run("prefers the id minted by the middleware", func(t *testing.T) {
		var got string

		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			c.Locals(fiberLocalsKey, "minted-id")
			got = GetRequestID(FromFiberCtx(c))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(fiberLocalsKey, "header-id")

		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "minted-id", got)
	})

	t.Run("falls back to the header, then to unknown", func(t *testing.T) {
		var withHeader, without string

		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			if c.Get(fiberLocalsKey) != "" {
				withHeader = GetRequestID(FromFiberCtx(c))
			} else {
				without = GetRequestID(FromFiberCtx(c))
			}
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(fiberLocalsKey, "header-id")

		_, err := app.Test(req)
		require.NoError(t, err)

		_, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, "header-id", withHeader)
		assert.Equal(t, "unknown", without)
	})
}
