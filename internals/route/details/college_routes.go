// internals/route/details/college_routes.go
package details

import (
	GroupRoutes "collegeschedule_backend/internals/features/college/groups/route"
	LessonRoutes "collegeschedule_backend/internals/features/college/lessons/route"
	ScheduleRoutes "collegeschedule_backend/internals/features/college/schedules/route"
	StatisticsRoutes "collegeschedule_backend/internals/features/college/statistics/route"
	StudentRoutes "collegeschedule_backend/internals/features/college/students/route"
	SubjectRoutes "collegeschedule_backend/internals/features/college/subjects/route"
	TeacherRoutes "collegeschedule_backend/internals/features/college/teachers/route"
	TimeSlotRoutes "collegeschedule_backend/internals/features/college/time_slots/route"
	TimetableRoutes "collegeschedule_backend/internals/features/college/timetable/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== API (/api/v1) ===================== */
// Resource CRUD used by the admin board and external clients.
func CollegeAPIRoutes(r fiber.Router, db *gorm.DB) {
	GroupRoutes.GroupRoutes(r, db)
	SubjectRoutes.SubjectRoutes(r, db)
	StudentRoutes.StudentRoutes(r, db)
	TeacherRoutes.TeacherRoutes(r, db)
	TimeSlotRoutes.TimeSlotRoutes(r, db)
	ScheduleRoutes.ScheduleRoutes(r, db)
	LessonRoutes.LessonRoutes(r, db)
	StatisticsRoutes.StatisticsRoutes(r, db)
}

/* ===================== PUBLIC ===================== */
func CollegePublicRoutes(app *fiber.App, public fiber.Router, db *gorm.DB) {
	TimetableRoutes.TimetableRoutes(app, public, db)
}
