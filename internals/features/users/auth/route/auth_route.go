package route

import (
	"github.com/gofiber/fiber/v2"

	"collegeschedule_backend/internals/features/users/auth/controller"
	"collegeschedule_backend/internals/features/users/auth/service"
	"collegeschedule_backend/internals/middlewares"
	authMw "collegeschedule_backend/internals/middlewares/auth"
)

// AuthRoutes mounts sign-in/out under /admin. onLogout may be nil.
func AuthRoutes(app *fiber.App, sessions *service.SessionService, onLogout func(string)) {
	ctrl := controller.NewAuthController(sessions, nil)
	ctrl.OnLogout = onLogout

	admin := app.Group("/admin")
	admin.Get("/login", ctrl.LoginPage)
	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	admin.Post("/logout", ctrl.Logout)
	admin.Get("/session", authMw.RequireSession(sessions, ""), ctrl.Current)
}
