package database

import (
	"log"

	"gorm.io/gorm"

	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	lessonModel "collegeschedule_backend/internals/features/college/lessons/model"
	scheduleModel "collegeschedule_backend/internals/features/college/schedules/model"
	studentModel "collegeschedule_backend/internals/features/college/students/model"
	subjectModel "collegeschedule_backend/internals/features/college/subjects/model"
	teacherModel "collegeschedule_backend/internals/features/college/teachers/model"
	slotModel "collegeschedule_backend/internals/features/college/time_slots/model"
	authModel "collegeschedule_backend/internals/features/users/auth/model"
)

// models in dependency order: referenced tables first.
func models() []any {
	return []any{
		&groupModel.GroupModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&slotModel.TimeSlotModel{},
		&studentModel.StudentModel{},
		&scheduleModel.ScheduleModel{},
		&lessonModel.LessonModel{},
		&authModel.TokenBlacklistModel{},
	}
}

// AutoMigrate creates or extends the college tables. It never drops columns.
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] Running AutoMigrate...")
	if err := db.AutoMigrate(models()...); err != nil {
		log.Printf("[ERROR] AutoMigrate failed: %v", err)
		return err
	}
	log.Println("[INFO] AutoMigrate done.")
	return nil
}
