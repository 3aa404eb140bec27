package middlewares

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proxiedApp trusts X-Forwarded-For the way main.go does.
func proxiedApp() *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})
}

func TestGlobalLimiterIgnoresForwardedLoopback(t *testing.T) {
	app := proxiedApp()
	app.Use("/api", GlobalRateLimiter())
	app.Get("/api/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	limited := 0
	for i := 0; i < 310; i++ {
		req := httptest.NewRequest(fiber.MethodGet, "/api/ping", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, "127.0.0.1")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		if resp.StatusCode == fiber.StatusTooManyRequests {
			limited++
		}
	}
	assert.Positive(t, limited)
}

func TestLoginLimiterIgnoresRotatedForwardedFor(t *testing.T) {
	app := proxiedApp()
	app.Post("/admin/login", LoginRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	statuses := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/admin/login", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i+1))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
	}
	assert.Equal(t, fiber.StatusNoContent, statuses[4])
	assert.Equal(t, fiber.StatusTooManyRequests, statuses[5])
	assert.Equal(t, fiber.StatusTooManyRequests, statuses[7])
}
