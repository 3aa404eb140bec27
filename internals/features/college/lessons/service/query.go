// file: internals/features/college/lessons/service/query.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/college/lessons/dto"
	"collegeschedule_backend/internals/features/college/lessons/model"
)

func day(t time.Time) string { return t.Format(constants.DateLayout) }

// ApplyLessonFilter narrows db (already scoped to lessons) by f.
// Date bounds are passed as text and cast, so the session timezone never shifts them.
func ApplyLessonFilter(db *gorm.DB, f dto.LessonFilter) *gorm.DB {
	if f.OnlyInstances || f.Date != nil || f.StartDate != nil || f.EndDate != nil {
		db = db.Where("lesson_date IS NOT NULL")
	}
	if f.Date != nil {
		db = db.Where("lesson_date = ?::date", day(*f.Date))
	}
	if f.StartDate != nil {
		db = db.Where("lesson_date >= ?::date", day(*f.StartDate))
	}
	if f.EndDate != nil {
		db = db.Where("lesson_date <= ?::date", day(*f.EndDate))
	}
	if f.GroupID != nil {
		db = db.Where("lesson_group_id = ?", *f.GroupID)
	}
	if f.TeacherID != nil {
		db = db.Where("lesson_teacher_id = ?", *f.TeacherID)
	}
	if f.Shift != 0 {
		db = db.Where("lesson_shift = ?", f.Shift)
	}
	return db
}

// FindLessons returns filtered lessons ordered by date then start time; templates sort last.
func FindLessons(ctx context.Context, db *gorm.DB, f dto.LessonFilter) ([]model.LessonModel, error) {
	var rows []model.LessonModel
	q := ApplyLessonFilter(db.WithContext(ctx).Model(&model.LessonModel{}), f)
	err := q.Order("lesson_date ASC NULLS LAST, lesson_start_time ASC NULLS LAST, lesson_created_at ASC").
		Find(&rows).Error
	return rows, err
}

// FindWithRefs is FindLessons plus the embedded group/teacher/subject records.
func FindWithRefs(ctx context.Context, db *gorm.DB, f dto.LessonFilter) ([]dto.LessonResponse, error) {
	rows, err := FindLessons(ctx, db, f)
	if err != nil {
		return nil, err
	}
	return WithRefs(ctx, db, rows)
}

func WithRefs(ctx context.Context, db *gorm.DB, rows []model.LessonModel) ([]dto.LessonResponse, error) {
	ids := NewRefIDs()
	for i := range rows {
		ids.Add(rows[i].LessonGroupID, rows[i].LessonTeacherID, rows[i].LessonSubjectID)
	}
	refs, err := LoadRefs(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	return dto.NewLessonResponses(rows, refs), nil
}
