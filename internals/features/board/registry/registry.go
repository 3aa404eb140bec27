// Package registry holds the active time slots partitioned by shift.
package registry

import "collegeschedule_backend/internals/features/board/model"

type Registry struct {
	byShift map[int][]model.TimeSlot
	byID    map[string]model.TimeSlot
}

// New keeps active slots only, in the order given.
func New(slots []model.TimeSlot) *Registry {
	r := &Registry{byShift: map[int][]model.TimeSlot{}, byID: map[string]model.TimeSlot{}}
	for _, s := range slots {
		if !s.IsActive {
			continue
		}
		r.byShift[s.Shift] = append(r.byShift[s.Shift], s)
		r.byID[s.ID] = s
	}
	return r
}

// ByShift returns the active slots of shift in backend order. The order is not re-sorted.
func (r *Registry) ByShift(shift int) []model.TimeSlot {
	return append([]model.TimeSlot(nil), r.byShift[shift]...)
}

// Find looks a slot up within one shift.
func (r *Registry) Find(shift int, id string) (model.TimeSlot, bool) {
	s, ok := r.byID[id]
	if !ok || s.Shift != shift {
		return model.TimeSlot{}, false
	}
	return s, true
}
