// file: internals/features/college/groups/route/group_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/groups/controller"
)

// GroupRoutes mounts /groups under the given api router.
func GroupRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewGroupController(db, nil)
	g := api.Group("/groups")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
