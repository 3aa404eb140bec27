package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeschedule_backend/internals/constants"
	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	scheduleDTO "collegeschedule_backend/internals/features/college/schedules/dto"
	subjectDTO "collegeschedule_backend/internals/features/college/subjects/dto"
	teacherDTO "collegeschedule_backend/internals/features/college/teachers/dto"
)

func strp(s string) *string { return &s }

func TestFromScheduleAndLessonShareOneShape(t *testing.T) {
	s := FromSchedule(scheduleDTO.ScheduleResponse{
		ID: uuid.New(), DayOfWeek: 3, StartTime: "10:00", EndTime: "10:45", Shift: 1, Room: "204",
		Group:   &groupDTO.GroupResponse{Name: "CS-21"},
		Teacher: &teacherDTO.TeacherResponse{FirstName: "Dana", LastName: "Omarova"},
		Subject: &subjectDTO.SubjectResponse{Name: "Networks", Code: "NET"},
	})
	assert.Equal(t, SourceSchedule, s.Source)
	assert.Equal(t, "Dana Omarova", s.TeacherName)
	assert.Equal(t, "NET", s.SubjectCode)
	assert.Nil(t, s.Date)

	l, ok := FromLesson(lessonDTO.LessonResponse{
		ID: uuid.New(), Room: "101", Date: strp("2024-06-12"), StartTime: strp("09:00"), EndTime: strp("09:45"),
	})
	require.True(t, ok)
	assert.Equal(t, SourceLesson, l.Source)
	assert.Equal(t, 3, l.Weekday)
	assert.Equal(t, 1, l.Shift) // derived from 09:00
	assert.Equal(t, constants.UnknownGroup, l.GroupName)
	assert.Equal(t, constants.UnknownCode, l.SubjectCode)

	_, ok = FromLesson(lessonDTO.LessonResponse{ID: uuid.New()})
	assert.False(t, ok)
}

func TestGroupByDayOrdersRows(t *testing.T) {
	days := GroupByDay([]DisplayRow{
		{Source: SourceLesson, ID: "l", Weekday: 3, StartTime: "09:00"},
		{Source: SourceSchedule, ID: "s", Weekday: 3, StartTime: "09:00"},
		{Source: SourceSchedule, ID: "early", Weekday: 3, StartTime: "08:00"},
		{Source: SourceLesson, ID: "sat", Weekday: 6, StartTime: "10:00"},
	})
	require.Len(t, days, 6) // Monday..Friday + Saturday
	wed := days[2]
	assert.Equal(t, "Wednesday", wed.Name)
	require.Len(t, wed.Rows, 3)
	assert.Equal(t, []string{"early", "s", "l"}, []string{wed.Rows[0].ID, wed.Rows[1].ID, wed.Rows[2].ID})
	assert.Empty(t, days[0].Rows)
	assert.Equal(t, constants.Saturday, days[5].Weekday)
}
