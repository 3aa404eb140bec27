package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"collegeschedule_backend/internals/features/board/model"
)

func TestByShiftKeepsBackendOrderAndActiveOnly(t *testing.T) {
	r := New([]model.TimeSlot{
		{ID: "b", Shift: 1, StartTime: "10:00", IsActive: true},
		{ID: "a", Shift: 1, StartTime: "09:00", IsActive: true},
		{ID: "off", Shift: 1, StartTime: "11:00", IsActive: false},
		{ID: "c", Shift: 2, StartTime: "13:00", IsActive: true},
	})
	got := r.ByShift(1)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "a", got[1].ID)
	}

	_, ok := r.Find(1, "c")
	assert.False(t, ok)
	_, ok = r.Find(2, "c")
	assert.True(t, ok)
	_, ok = r.Find(1, "off")
	assert.False(t, ok)
}
