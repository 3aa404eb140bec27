// file: internals/features/college/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/subjects/controller"
)

// SubjectRoutes mounts /subjects under the given api router.
func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db, nil)
	g := api.Group("/subjects")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
