package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTimeSlotDefaults(t *testing.T) {
	m, err := CreateTimeSlotRequest{StartTime: "8:00", EndTime: "09:20", Shift: 1}.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "08:00", m.TimeSlotStartTime)
	assert.Equal(t, "08:00-09:20", m.TimeSlotLabel)
	assert.True(t, m.TimeSlotIsActive)
}

func TestCreateTimeSlotKeepsLabelAndFlag(t *testing.T) {
	label, off := " Pair 1 ", false
	m, err := CreateTimeSlotRequest{StartTime: "08:00", EndTime: "09:20", Shift: 1, Label: &label, IsActive: &off}.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Pair 1", m.TimeSlotLabel)
	assert.False(t, m.TimeSlotIsActive)
}

func TestTimeSlotEndMustFollowStart(t *testing.T) {
	_, err := CreateTimeSlotRequest{StartTime: "09:20", EndTime: "08:00", Shift: 1}.ToModel()
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestUpdateTimeSlotRegeneratesLabel(t *testing.T) {
	m, err := CreateTimeSlotRequest{StartTime: "08:00", EndTime: "09:20", Shift: 1}.ToModel()
	require.NoError(t, err)

	end := "09:30"
	require.NoError(t, UpdateTimeSlotRequest{EndTime: &end}.Apply(&m))
	assert.Equal(t, "08:00-09:30", m.TimeSlotLabel)

	active := false
	require.NoError(t, UpdateTimeSlotRequest{IsActive: &active}.Apply(&m))
	assert.Equal(t, "08:00-09:30", m.TimeSlotLabel)
	assert.False(t, m.TimeSlotIsActive)
}
