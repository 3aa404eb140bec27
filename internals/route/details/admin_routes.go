// internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	BoardController "collegeschedule_backend/internals/features/board/controller"
	"collegeschedule_backend/internals/features/board/engine"
	BoardRoutes "collegeschedule_backend/internals/features/board/route"
	AuthRoutes "collegeschedule_backend/internals/features/users/auth/route"
	authService "collegeschedule_backend/internals/features/users/auth/service"
	"collegeschedule_backend/internals/helpers/flash"
)

// AdminDeps are the long-lived services behind the admin pages.
type AdminDeps struct {
	Sessions *authService.SessionService
	Boards   *engine.Boards
	Toasts   flash.Store
	History  BoardController.HistorySource
}

/* ===================== ADMIN (session cookie) ===================== */
func AdminRoutes(app *fiber.App, deps AdminDeps) {
	// signing out discards the per-user board
	AuthRoutes.AuthRoutes(app, deps.Sessions, func(username string) {
		deps.Boards.Drop(username)
	})
	BoardRoutes.BoardRoutes(app, deps.Sessions, deps.Boards, deps.Toasts, deps.History)
}
