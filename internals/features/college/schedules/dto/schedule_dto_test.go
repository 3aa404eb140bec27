package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(start, end string) CreateScheduleRequest {
	return CreateScheduleRequest{
		GroupID:   uuid.NewString(),
		TeacherID: uuid.NewString(),
		SubjectID: uuid.NewString(),
		Room:      "204",
		DayOfWeek: 3,
		StartTime: start,
		EndTime:   end,
	}
}

func TestScheduleShiftFromStart(t *testing.T) {
	m, err := request("08:00", "09:20").ToModel()
	require.NoError(t, err)
	assert.Equal(t, 1, m.ScheduleShift)

	m, err = request("12:40", "14:00").ToModel()
	require.NoError(t, err)
	assert.Equal(t, 2, m.ScheduleShift)
}

func TestScheduleOutsideShiftsNeedsExplicitShift(t *testing.T) {
	_, err := request("18:00", "19:00").ToModel()
	assert.Error(t, err)

	r := request("18:00", "19:00")
	two := 2
	r.Shift = &two
	m, err := r.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 2, m.ScheduleShift)
}

func TestScheduleRejectsReversedTimes(t *testing.T) {
	_, err := request("10:00", "10:00").ToModel()
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestScheduleUpdateKeepsShiftWhenStartUnchanged(t *testing.T) {
	m, err := request("08:00", "09:20").ToModel()
	require.NoError(t, err)

	end := "10:00"
	require.NoError(t, UpdateScheduleRequest{EndTime: &end}.Apply(&m))
	assert.Equal(t, 1, m.ScheduleShift)

	start := "13:00"
	end = "14:00"
	require.NoError(t, UpdateScheduleRequest{StartTime: &start, EndTime: &end}.Apply(&m))
	assert.Equal(t, 2, m.ScheduleShift)
}
