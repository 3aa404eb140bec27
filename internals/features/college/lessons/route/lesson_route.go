// file: internals/features/college/lessons/route/lesson_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/lessons/controller"
)

func LessonRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonController(db, nil)
	g := api.Group("/lessons")

	// static paths before /:id
	g.Get("/available", ctl.Available)
	g.Get("/date/:date", ctl.ByDate)

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
