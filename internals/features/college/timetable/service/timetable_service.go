package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	scheduleService "collegeschedule_backend/internals/features/college/schedules/service"
	teacherModel "collegeschedule_backend/internals/features/college/teachers/model"
	"collegeschedule_backend/internals/features/college/timetable/dto"
	"collegeschedule_backend/internals/helpers/dbtime"
)

var ErrOwnerNotFound = errors.New("group or teacher not found")

// Build collects weekly schedules plus the lessons of the week containing ref.
func Build(ctx context.Context, db *gorm.DB, q dto.TimetableQuery, ref time.Time) (dto.Timetable, error) {
	id := q.OwnerID()
	out := dto.Timetable{Type: q.Type, Shift: q.Shift}

	sf := scheduleService.ScheduleFilter{Shift: q.Shift}
	lf := lessonDTO.LessonFilter{Shift: q.Shift}
	switch q.Type {
	case dto.TypeGroup:
		var g groupModel.GroupModel
		if err := db.WithContext(ctx).First(&g, "group_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return out, ErrOwnerNotFound
			}
			return out, err
		}
		out.OwnerName = g.GroupName
		sf.GroupID, lf.GroupID = &id, &id
	default:
		var t teacherModel.TeacherModel
		if err := db.WithContext(ctx).First(&t, "teacher_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return out, ErrOwnerNotFound
			}
			return out, err
		}
		out.OwnerName = t.FullName()
		sf.TeacherID, lf.TeacherID = &id, &id
	}

	from := dbtime.WeekStart(ref)
	to := from.AddDate(0, 0, 6)
	lf.StartDate, lf.EndDate = &from, &to
	out.WeekStart = from.Format(constants.DateLayout)

	schedules, err := scheduleService.FindWithRefs(ctx, db, sf)
	if err != nil {
		return out, err
	}
	lessons, err := lessonService.FindWithRefs(ctx, db, lf)
	if err != nil {
		return out, err
	}

	rows := make([]dto.DisplayRow, 0, len(schedules)+len(lessons))
	for _, s := range schedules {
		rows = append(rows, dto.FromSchedule(s))
	}
	for _, l := range lessons {
		if row, ok := dto.FromLesson(l); ok {
			rows = append(rows, row)
		}
	}
	out.Days = dto.GroupByDay(rows)
	return out, nil
}
