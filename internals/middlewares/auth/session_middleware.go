// internals/middlewares/auth/session_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	authService "collegeschedule_backend/internals/features/users/auth/service"
	helper "collegeschedule_backend/internals/helpers"
)

// RequireSession lets the request through only with a valid, non-revoked admin session.
// With a loginPath, browsers are redirected there; otherwise the reply is a 401 envelope.
func RequireSession(svc *authService.SessionService, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := svc.Parse(helper.ReqCtx(c), authService.TokenFrom(c))
		if err != nil {
			if !errors.Is(err, authService.ErrNoSession) && !errors.Is(err, authService.ErrSessionRevoked) {
				log.Println("[ERROR] session check:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			authService.ClearCookie(c)
			if loginPath != "" && c.Method() == fiber.MethodGet {
				return c.Redirect(loginPath, fiber.StatusSeeOther)
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
		}
		authService.Attach(c, sess)
		return c.Next()
	}
}
