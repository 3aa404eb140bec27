package middlewares

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "collegeschedule_backend/internals/helpers"
)

func limitReached(msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
	}
}

// remoteIP is the peer address of the connection. Unlike c.IP() it ignores
// X-Forwarded-For, which any client can set.
func remoteIP(c *fiber.Ctx) net.IP {
	return c.Context().RemoteIP()
}

// Global limiter for every /api request. The admin board calls /api/v1 over
// loopback, so local callers are not counted.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return remoteIP(c).IsLoopback()
		},
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return remoteIP(c).String()
		},
		LimitReached: limitReached("Too many requests. Please try again later."),
	})
}

// Stricter limiter for POST /admin/login.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return remoteIP(c).String()
		},
		LimitReached: limitReached("Too many sign-in attempts. Try again in a minute."),
	})
}
