// file: internals/features/college/statistics/service/statistics_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	lessonModel "collegeschedule_backend/internals/features/college/lessons/model"
	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	"collegeschedule_backend/internals/features/college/statistics/dto"
	teacherModel "collegeschedule_backend/internals/features/college/teachers/model"
)

const topLimit = 10

type countRow struct {
	Key   int
	Count int64
}

type topRow struct {
	ID    uuid.UUID
	Count int64
}

func scoped(ctx context.Context, db *gorm.DB, f lessonDTO.LessonFilter) *gorm.DB {
	return lessonService.ApplyLessonFilter(db.WithContext(ctx).Model(&lessonModel.LessonModel{}), f)
}

// Compute aggregates scheduled lessons matching f. f must carry both date bounds.
func Compute(ctx context.Context, db *gorm.DB, f lessonDTO.LessonFilter) (*dto.LessonStatistics, error) {
	out := &dto.LessonStatistics{
		Period:      dto.NewPeriod(f),
		ByDayOfWeek: dto.EmptyByDay(),
		TopTeachers: []dto.TopEntry{},
		TopGroups:   []dto.TopEntry{},
	}

	if err := scoped(ctx, db, f).Count(&out.TotalLessons).Error; err != nil {
		return nil, err
	}

	var shifts []countRow
	if err := scoped(ctx, db, f).
		Select("COALESCE(lesson_shift, 0) AS key, COUNT(*) AS count").
		Group("COALESCE(lesson_shift, 0)").
		Scan(&shifts).Error; err != nil {
		return nil, err
	}
	for _, r := range shifts {
		switch r.Key {
		case constants.FirstShift:
			out.ByShift.FirstShift = r.Count
		case constants.SecondShift:
			out.ByShift.SecondShift = r.Count
		}
	}

	var days []countRow
	if err := scoped(ctx, db, f).
		Select("EXTRACT(ISODOW FROM lesson_date)::int AS key, COUNT(*) AS count").
		Group("EXTRACT(ISODOW FROM lesson_date)").
		Scan(&days).Error; err != nil {
		return nil, err
	}
	for _, r := range days {
		if name := constants.WeekdayName(r.Key); name != "" {
			out.ByDayOfWeek[name] = r.Count
		}
	}

	var err error
	if out.TopTeachers, err = topTeachers(ctx, db, f); err != nil {
		return nil, err
	}
	if out.TopGroups, err = topGroups(ctx, db, f); err != nil {
		return nil, err
	}
	return out, nil
}

func top(ctx context.Context, db *gorm.DB, f lessonDTO.LessonFilter, col string) ([]topRow, error) {
	var rows []topRow
	err := scoped(ctx, db, f).
		Select(col + " AS id, COUNT(*) AS count").
		Group(col).
		Order("count DESC, " + col + " ASC").
		Limit(topLimit).
		Scan(&rows).Error
	return rows, err
}

func topTeachers(ctx context.Context, db *gorm.DB, f lessonDTO.LessonFilter) ([]dto.TopEntry, error) {
	rows, err := top(ctx, db, f, "lesson_teacher_id")
	if err != nil || len(rows) == 0 {
		return []dto.TopEntry{}, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	var ts []teacherModel.TeacherModel
	if err := db.WithContext(ctx).Where("teacher_id IN ?", ids).Find(&ts).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(ts))
	for _, t := range ts {
		names[t.TeacherID] = t.FullName()
	}
	return entries(rows, names, constants.UnknownTeacher), nil
}

func topGroups(ctx context.Context, db *gorm.DB, f lessonDTO.LessonFilter) ([]dto.TopEntry, error) {
	rows, err := top(ctx, db, f, "lesson_group_id")
	if err != nil || len(rows) == 0 {
		return []dto.TopEntry{}, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	var gs []groupModel.GroupModel
	if err := db.WithContext(ctx).Where("group_id IN ?", ids).Find(&gs).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(gs))
	for _, g := range gs {
		names[g.GroupID] = g.GroupName
	}
	return entries(rows, names, constants.UnknownGroup), nil
}

func entries(rows []topRow, names map[uuid.UUID]string, unknown string) []dto.TopEntry {
	out := make([]dto.TopEntry, 0, len(rows))
	for _, r := range rows {
		name, ok := names[r.ID]
		if !ok {
			name = unknown
		}
		out = append(out, dto.TopEntry{ID: r.ID, Name: name, Count: r.Count})
	}
	return out
}
