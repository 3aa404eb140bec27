// file: internals/features/college/schedules/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/schedules/controller"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleController(db, nil)
	g := api.Group("/schedules")

	g.Get("/day/:day", ctl.ByDay)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
