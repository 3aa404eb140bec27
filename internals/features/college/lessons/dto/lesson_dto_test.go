package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func baseRequest() CreateLessonRequest {
	return CreateLessonRequest{
		GroupID:   uuid.NewString(),
		TeacherID: uuid.NewString(),
		SubjectID: uuid.NewString(),
		Room:      " 101 ",
	}
}

func TestCreateTemplateHasNoScheduling(t *testing.T) {
	m, err := baseRequest().ToModel()
	require.NoError(t, err)
	assert.Nil(t, m.LessonDate)
	assert.Nil(t, m.LessonStartTime)
	assert.Nil(t, m.LessonShift)
	assert.Equal(t, "101", m.LessonRoom)
}

func TestCreateInstanceDerivesShift(t *testing.T) {
	r := baseRequest()
	r.Date = strp("2024-06-12")
	r.StartTime = strp("13:00")
	r.EndTime = strp("14:20")

	m, err := r.ToModel()
	require.NoError(t, err)
	require.NotNil(t, m.LessonShift)
	assert.Equal(t, 2, *m.LessonShift)
	assert.Equal(t, "2024-06-12", *FormatDate(m.LessonDate))
}

func TestCreateInstanceExplicitShiftWins(t *testing.T) {
	r := baseRequest()
	r.Date = strp("2024-06-12")
	r.StartTime = strp("9:00")
	r.EndTime = strp("09:45")
	r.Shift = intp(2)

	m, err := r.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "09:00", *m.LessonStartTime)
	assert.Equal(t, 2, *m.LessonShift)
}

func TestCreateLessonShapeErrors(t *testing.T) {
	r := baseRequest()
	r.StartTime = strp("09:00")
	_, err := r.ToModel()
	assert.ErrorIs(t, err, ErrTimeWithoutDate)

	r = baseRequest()
	r.Date = strp("2024-06-12")
	r.StartTime = strp("09:00")
	_, err = r.ToModel()
	assert.ErrorIs(t, err, ErrInstanceNeedsTime)

	r.EndTime = strp("08:30")
	_, err = r.ToModel()
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	r = baseRequest()
	r.Date = strp("12.06.2024")
	_, err = r.ToModel()
	assert.Error(t, err)
}

func TestUpdateRederivesShiftFromNewStart(t *testing.T) {
	r := baseRequest()
	r.Date = strp("2024-06-12")
	r.StartTime = strp("09:00")
	r.EndTime = strp("09:45")
	m, err := r.ToModel()
	require.NoError(t, err)
	require.Equal(t, 1, *m.LessonShift)

	err = UpdateLessonRequest{StartTime: strp("14:10"), EndTime: strp("15:30")}.Apply(&m)
	require.NoError(t, err)
	assert.Equal(t, 2, *m.LessonShift)
}

func TestListQueryToFilter(t *testing.T) {
	gid := uuid.New()
	f, err := ListLessonsQuery{StartDate: "2024-06-10", GroupID: gid.String(), Shift: 1}.ToFilter()
	require.NoError(t, err)
	require.NotNil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.Equal(t, gid, *f.GroupID)
	assert.Equal(t, 1, f.Shift)

	_, err = ListLessonsQuery{Shift: 3}.ToFilter()
	assert.Error(t, err)
	_, err = ListLessonsQuery{TeacherID: "nope"}.ToFilter()
	assert.EqualError(t, err, "invalid teacher_id")
}
