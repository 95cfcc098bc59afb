package context

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDDefaults(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
	assert.Equal(t, "abc", GetRequestID(WithRequestID(context.Background(), "abc")))
}

func TestFromFiberCtxPrefersLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(RequestIDLocal, "from-locals")
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(RequestIDLocal, "from-header")

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "from-locals", string(body))
}

func TestFromFiberCtx(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(RequestIDLocal, "req-9")

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "req-9", string(body))
}
