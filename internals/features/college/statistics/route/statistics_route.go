// file: internals/features/college/statistics/route/statistics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/statistics/controller"
)

func StatisticsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStatisticsController(db)
	g := api.Group("/statistics")

	g.Get("/lessons", ctl.Lessons)
	g.Get("/lessons/export", ctl.Export)
}
