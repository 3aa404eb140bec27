package route

import (
	"github.com/gofiber/fiber/v2"

	"collegeschedule_backend/internals/features/board/controller"
	"collegeschedule_backend/internals/features/board/engine"
	authService "collegeschedule_backend/internals/features/users/auth/service"
	"collegeschedule_backend/internals/helpers/flash"
	authMw "collegeschedule_backend/internals/middlewares/auth"
)

// BoardRoutes mounts the admin board and history pages behind the admin session.
func BoardRoutes(app *fiber.App, sessions *authService.SessionService, boards *engine.Boards, toasts flash.Store, history controller.HistorySource) {
	ctl := controller.NewBoardController(boards, toasts, history, nil)

	guard := authMw.RequireSession(sessions, "/admin/login")

	// /admin/login lives on the same prefix, so the guard is per route here
	admin := app.Group("/admin")
	admin.Get("/", guard, func(c *fiber.Ctx) error { return c.Redirect("/admin/board", fiber.StatusSeeOther) })
	admin.Get("/history", guard, ctl.History)

	b := app.Group("/admin/board", guard)
	b.Get("/", ctl.Page)
	b.Get("/state", ctl.State)
	b.Post("/reload", ctl.Reload)
	b.Post("/select/:id", ctl.Select)
	b.Post("/cancel", ctl.Cancel)
	b.Post("/assign/:slotId", ctl.Assign)
	b.Post("/unassign/:id", ctl.Unassign)
	b.Post("/templates", ctl.CreateTemplate)
	b.Post("/templates/:id/delete", ctl.DeleteTemplate)
	b.Post("/lessons/:id", ctl.UpdateLesson)
	b.Post("/toasts/:id/dismiss", ctl.DismissToast)
}
