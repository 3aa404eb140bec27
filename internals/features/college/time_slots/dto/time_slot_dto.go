// file: internals/features/college/time_slots/dto/time_slot_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "collegeschedule_backend/internals/features/college/time_slots/model"
	"collegeschedule_backend/internals/helpers/dbtime"
)

var ErrEndBeforeStart = errors.New("end_time must be after start_time")

type CreateTimeSlotRequest struct {
	StartTime string  `json:"start_time" validate:"required,hhmm"`
	EndTime   string  `json:"end_time"   validate:"required,hhmm"`
	Shift     int     `json:"shift"      validate:"required,oneof=1 2"`
	Label     *string `json:"label"      validate:"omitempty,max=40"`
	IsActive  *bool   `json:"is_active"`
}

func (r CreateTimeSlotRequest) ToModel() (model.TimeSlotModel, error) {
	m := model.TimeSlotModel{
		TimeSlotStartTime: dbtime.NormalizeHM(r.StartTime),
		TimeSlotEndTime:   dbtime.NormalizeHM(r.EndTime),
		TimeSlotShift:     r.Shift,
		TimeSlotIsActive:  true,
	}
	if r.IsActive != nil {
		m.TimeSlotIsActive = *r.IsActive
	}
	if r.Label != nil {
		m.TimeSlotLabel = strings.TrimSpace(*r.Label)
	}
	err := finalize(&m)
	return m, err
}

type UpdateTimeSlotRequest struct {
	StartTime *string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime   *string `json:"end_time"   validate:"omitempty,hhmm"`
	Shift     *int    `json:"shift"      validate:"omitempty,oneof=1 2"`
	Label     *string `json:"label"      validate:"omitempty,max=40"`
	IsActive  *bool   `json:"is_active"`
}

func (r UpdateTimeSlotRequest) Apply(m *model.TimeSlotModel) error {
	timesChanged := false
	if r.StartTime != nil {
		m.TimeSlotStartTime = dbtime.NormalizeHM(*r.StartTime)
		timesChanged = true
	}
	if r.EndTime != nil {
		m.TimeSlotEndTime = dbtime.NormalizeHM(*r.EndTime)
		timesChanged = true
	}
	if r.Shift != nil {
		m.TimeSlotShift = *r.Shift
	}
	if r.IsActive != nil {
		m.TimeSlotIsActive = *r.IsActive
	}
	switch {
	case r.Label != nil:
		m.TimeSlotLabel = strings.TrimSpace(*r.Label)
	case timesChanged:
		m.TimeSlotLabel = "" // regenerated below
	}
	return finalize(m)
}

func finalize(m *model.TimeSlotModel) error {
	start, err := dbtime.ParseHM(m.TimeSlotStartTime)
	if err != nil {
		return err
	}
	end, err := dbtime.ParseHM(m.TimeSlotEndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	if m.TimeSlotLabel == "" {
		m.TimeSlotLabel = model.DefaultLabel(m.TimeSlotStartTime, m.TimeSlotEndTime)
	}
	return nil
}

type TimeSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Shift     int       `json:"shift"`
	Label     string    `json:"label"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTimeSlotResponse(m *model.TimeSlotModel) TimeSlotResponse {
	return TimeSlotResponse{
		ID:        m.TimeSlotID,
		StartTime: m.TimeSlotStartTime,
		EndTime:   m.TimeSlotEndTime,
		Shift:     m.TimeSlotShift,
		Label:     m.TimeSlotLabel,
		IsActive:  m.TimeSlotIsActive,
		CreatedAt: m.TimeSlotCreatedAt,
		UpdatedAt: m.TimeSlotUpdatedAt,
	}
}

func NewTimeSlotResponses(ms []model.TimeSlotModel) []TimeSlotResponse {
	out := make([]TimeSlotResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewTimeSlotResponse(&ms[i]))
	}
	return out
}
