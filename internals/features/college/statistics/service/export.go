// file: internals/features/college/statistics/service/export.go
package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"collegeschedule_backend/internals/constants"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	"collegeschedule_backend/internals/features/college/statistics/dto"
	"collegeschedule_backend/internals/helpers/dbtime"
)

const (
	lessonsSheet = "Lessons"
	summarySheet = "Summary"
)

var lessonHeaders = []string{
	"Date", "Weekday", "Start", "End", "Shift",
	"Group", "Teacher", "Subject code", "Subject", "Room", "Description",
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func lessonCells(l lessonDTO.LessonResponse) []any {
	weekday := ""
	if l.Date != nil {
		if t, err := dbtime.ParseDate(*l.Date); err == nil {
			weekday = constants.WeekdayName(dbtime.ISOWeekday(t))
		}
	}
	shift := ""
	if l.Shift != nil {
		shift = constants.ShiftName(*l.Shift)
	}
	group, teacher, code, subject := constants.UnknownGroup, constants.UnknownTeacher, constants.UnknownCode, constants.UnknownSubject
	if l.Group != nil {
		group = l.Group.Name
	}
	if l.Teacher != nil {
		teacher = l.Teacher.FirstName + " " + l.Teacher.LastName
	}
	if l.Subject != nil {
		code, subject = l.Subject.Code, l.Subject.Name
	}
	return []any{
		deref(l.Date), weekday, deref(l.StartTime), deref(l.EndTime), shift,
		group, teacher, code, subject, l.Room, deref(l.Description),
	}
}

// BuildLessonWorkbook writes one row per lesson plus a summary sheet.
func BuildLessonWorkbook(stats *dto.LessonStatistics, lessons []lessonDTO.LessonResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(lessonsSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(lessonsSheet, "A1", &lessonHeaders); err != nil {
		return nil, err
	}
	for i, l := range lessons {
		cells := lessonCells(l)
		if err := f.SetSheetRow(lessonsSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
	}
	_ = f.SetPanes(lessonsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if stats != nil {
		if _, err := f.NewSheet(summarySheet); err != nil {
			return nil, err
		}
		rows := [][]any{
			{"Period", stats.Period.StartDate + " - " + stats.Period.EndDate},
			{"Total lessons", stats.TotalLessons},
			{constants.ShiftName(constants.FirstShift), stats.ByShift.FirstShift},
			{constants.ShiftName(constants.SecondShift), stats.ByShift.SecondShift},
		}
		for d := constants.Monday; d <= constants.Sunday; d++ {
			name := constants.WeekdayName(d)
			rows = append(rows, []any{name, stats.ByDayOfWeek[name]})
		}
		for i := range rows {
			if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
