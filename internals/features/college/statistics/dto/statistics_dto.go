// file: internals/features/college/statistics/dto/statistics_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"collegeschedule_backend/internals/constants"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	"collegeschedule_backend/internals/helpers/dbtime"
)

// DefaultPeriodDays is the look-back window when no start_date is given.
const DefaultPeriodDays = 30

type StatisticsQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	GroupID   string `query:"group_id"`
	TeacherID string `query:"teacher_id"`
}

// ToFilter resolves defaults against now; the returned filter always has both bounds.
func (q StatisticsQuery) ToFilter(now time.Time) (lessonDTO.LessonFilter, error) {
	f, err := lessonDTO.ListLessonsQuery{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		GroupID:   q.GroupID,
		TeacherID: q.TeacherID,
	}.ToFilter()
	if err != nil {
		return f, err
	}
	today := dbtime.DateOnly(now)
	if f.EndDate == nil {
		f.EndDate = &today
	}
	if f.StartDate == nil {
		from := today.AddDate(0, 0, -DefaultPeriodDays)
		f.StartDate = &from
	}
	if f.StartDate.After(*f.EndDate) {
		return f, errors.New("start_date must not be after end_date")
	}
	f.OnlyInstances = true
	return f, nil
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewPeriod(f lessonDTO.LessonFilter) Period {
	return Period{
		StartDate: f.StartDate.Format(constants.DateLayout),
		EndDate:   f.EndDate.Format(constants.DateLayout),
	}
}

type ByShift struct {
	FirstShift  int64 `json:"first_shift"`
	SecondShift int64 `json:"second_shift"`
}

type TopEntry struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int64     `json:"count"`
}

type LessonStatistics struct {
	Period       Period           `json:"period"`
	TotalLessons int64            `json:"total_lessons"`
	ByShift      ByShift          `json:"by_shift"`
	ByDayOfWeek  map[string]int64 `json:"by_day_of_week"`
	TopTeachers  []TopEntry       `json:"top_teachers"`
	TopGroups    []TopEntry       `json:"top_groups"`
}

// EmptyByDay has every weekday name present with a zero count.
func EmptyByDay() map[string]int64 {
	out := make(map[string]int64, 7)
	for d := constants.Monday; d <= constants.Sunday; d++ {
		out[constants.WeekdayName(d)] = 0
	}
	return out
}

func ExportFileName(p Period) string {
	return "lessons_" + strings.ReplaceAll(p.StartDate, "-", "") + "_" + strings.ReplaceAll(p.EndDate, "-", "") + ".xlsx"
}
