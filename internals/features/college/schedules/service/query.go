// file: internals/features/college/schedules/service/query.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	"collegeschedule_backend/internals/features/college/schedules/dto"
	"collegeschedule_backend/internals/features/college/schedules/model"
)

type ScheduleFilter struct {
	GroupID   *uuid.UUID
	TeacherID *uuid.UUID
	DayOfWeek int
	Shift     int
}

func FindSchedules(ctx context.Context, db *gorm.DB, f ScheduleFilter) ([]model.ScheduleModel, error) {
	q := db.WithContext(ctx).Model(&model.ScheduleModel{})
	if f.GroupID != nil {
		q = q.Where("schedule_group_id = ?", *f.GroupID)
	}
	if f.TeacherID != nil {
		q = q.Where("schedule_teacher_id = ?", *f.TeacherID)
	}
	if f.DayOfWeek != 0 {
		q = q.Where("schedule_day_of_week = ?", f.DayOfWeek)
	}
	if f.Shift != 0 {
		q = q.Where("schedule_shift = ?", f.Shift)
	}
	var rows []model.ScheduleModel
	err := q.Order("schedule_day_of_week ASC, schedule_start_time ASC").Find(&rows).Error
	return rows, err
}

func FindWithRefs(ctx context.Context, db *gorm.DB, f ScheduleFilter) ([]dto.ScheduleResponse, error) {
	rows, err := FindSchedules(ctx, db, f)
	if err != nil {
		return nil, err
	}
	return WithRefs(ctx, db, rows)
}

func WithRefs(ctx context.Context, db *gorm.DB, rows []model.ScheduleModel) ([]dto.ScheduleResponse, error) {
	ids := lessonService.NewRefIDs()
	for i := range rows {
		ids.Add(rows[i].ScheduleGroupID, rows[i].ScheduleTeacherID, rows[i].ScheduleSubjectID)
	}
	refs, err := lessonService.LoadRefs(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	return dto.NewScheduleResponses(rows, refs), nil
}
