// file: internals/features/college/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db, nil)
	g := api.Group("/students")

	g.Get("/", ctl.List)
	g.Get("/:iin/schedule", ctl.Schedule)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
