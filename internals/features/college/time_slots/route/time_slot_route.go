// file: internals/features/college/time_slots/route/time_slot_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/time_slots/controller"
)

func TimeSlotRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimeSlotController(db, nil)
	g := api.Group("/time-slots")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
