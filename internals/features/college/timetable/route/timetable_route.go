package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/timetable/controller"
)

// TimetableRoutes mounts the JSON endpoint on public and the HTML page on app.
func TimetableRoutes(app *fiber.App, public fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimetableController(db, nil)
	public.Get("/timetable", ctl.Get)
	app.Get("/timetable", ctl.Page)
}
