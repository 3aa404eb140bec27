package dto

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"collegeschedule_backend/internals/constants"
	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	scheduleDTO "collegeschedule_backend/internals/features/college/schedules/dto"
	subjectDTO "collegeschedule_backend/internals/features/college/subjects/dto"
	teacherDTO "collegeschedule_backend/internals/features/college/teachers/dto"
	"collegeschedule_backend/internals/helpers/dbtime"
)

const (
	SourceSchedule = "schedule"
	SourceLesson   = "lesson"

	TypeGroup   = "group"
	TypeTeacher = "teacher"
)

type TimetableQuery struct {
	Type  string `query:"type"  validate:"required,oneof=group teacher"`
	ID    string `query:"id"    validate:"required,uuid"`
	Shift int    `query:"shift" validate:"omitempty,oneof=1 2"`
	Week  string `query:"week"` // any date inside the wanted week, default today
}

func (q TimetableQuery) OwnerID() uuid.UUID {
	return uuid.MustParse(strings.TrimSpace(q.ID))
}

var ErrBadWeek = errors.New("invalid week, use YYYY-MM-DD")

// DisplayRow is one line of the public timetable, whatever it was built from.
type DisplayRow struct {
	Source      string  `json:"source"`
	ID          string  `json:"id"`
	Weekday     int     `json:"weekday"`
	Date        *string `json:"date,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Shift       int     `json:"shift"`
	GroupName   string  `json:"group_name"`
	TeacherName string  `json:"teacher_name"`
	SubjectName string  `json:"subject_name"`
	SubjectCode string  `json:"subject_code"`
	Room        string  `json:"room"`
	Description string  `json:"description,omitempty"`
}

func names(g *groupDTO.GroupResponse, t *teacherDTO.TeacherResponse, s *subjectDTO.SubjectResponse) (group, teacher, subject, code string) {
	group, teacher, subject, code = constants.UnknownGroup, constants.UnknownTeacher, constants.UnknownSubject, constants.UnknownCode
	if g != nil {
		group = g.Name
	}
	if t != nil {
		teacher = strings.TrimSpace(t.FirstName + " " + t.LastName)
	}
	if s != nil {
		subject = s.Name
		if s.Code != "" {
			code = s.Code
		}
	}
	return
}

func FromSchedule(s scheduleDTO.ScheduleResponse) DisplayRow {
	row := DisplayRow{
		Source:    SourceSchedule,
		ID:        s.ID.String(),
		Weekday:   s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Shift:     s.Shift,
		Room:      s.Room,
	}
	row.GroupName, row.TeacherName, row.SubjectName, row.SubjectCode = names(s.Group, s.Teacher, s.Subject)
	if s.Description != nil {
		row.Description = *s.Description
	}
	return row
}

// FromLesson adapts a dated lesson; templates have no place on a timetable and report false.
func FromLesson(l lessonDTO.LessonResponse) (DisplayRow, bool) {
	if l.Date == nil {
		return DisplayRow{}, false
	}
	d, err := dbtime.ParseDate(*l.Date)
	if err != nil {
		return DisplayRow{}, false
	}
	row := DisplayRow{
		Source:  SourceLesson,
		ID:      l.ID.String(),
		Weekday: dbtime.ISOWeekday(d),
		Date:    l.Date,
		Room:    l.Room,
	}
	if l.StartTime != nil {
		row.StartTime = *l.StartTime
	}
	if l.EndTime != nil {
		row.EndTime = *l.EndTime
	}
	if l.Shift != nil {
		row.Shift = *l.Shift
	} else {
		row.Shift = dbtime.DetermineShift(row.StartTime)
	}
	row.GroupName, row.TeacherName, row.SubjectName, row.SubjectCode = names(l.Group, l.Teacher, l.Subject)
	if l.Description != nil {
		row.Description = *l.Description
	}
	return row, true
}

type Day struct {
	Weekday int          `json:"weekday"`
	Name    string       `json:"name"`
	Rows    []DisplayRow `json:"rows"`
}

type Timetable struct {
	Type      string `json:"type"`
	OwnerName string `json:"owner_name"`
	WeekStart string `json:"week_start"`
	Shift     int    `json:"shift,omitempty"`
	Days      []Day  `json:"days"`
}

// GroupByDay always yields Monday..Friday; weekend days only when they hold rows.
// Rows inside a day are ordered by start time, schedules before lessons on ties.
func GroupByDay(rows []DisplayRow) []Day {
	byDay := map[int][]DisplayRow{}
	for _, r := range rows {
		byDay[r.Weekday] = append(byDay[r.Weekday], r)
	}
	var out []Day
	for d := constants.Monday; d <= constants.Sunday; d++ {
		list := byDay[d]
		if d > constants.Friday && len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].StartTime != list[j].StartTime {
				return list[i].StartTime < list[j].StartTime
			}
			return list[i].Source == SourceSchedule && list[j].Source != SourceSchedule
		})
		if list == nil {
			list = []DisplayRow{}
		}
		out = append(out, Day{Weekday: d, Name: constants.WeekdayName(d), Rows: list})
	}
	return out
}
