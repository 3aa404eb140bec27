// file: internals/features/college/schedules/dto/schedule_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	model "collegeschedule_backend/internals/features/college/schedules/model"
	subjectDTO "collegeschedule_backend/internals/features/college/subjects/dto"
	teacherDTO "collegeschedule_backend/internals/features/college/teachers/dto"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

var ErrEndBeforeStart = errors.New("end_time must be after start_time")

// Refs is shared with lessons; both embed the same referenced records.
type Refs = lessonDTO.Refs

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateScheduleRequest struct {
	GroupID     string  `json:"group_id"    validate:"required,uuid"`
	TeacherID   string  `json:"teacher_id"  validate:"required,uuid"`
	SubjectID   string  `json:"subject_id"  validate:"required,uuid"`
	Room        string  `json:"room"        validate:"required,max=40"`
	DayOfWeek   int     `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime   string  `json:"start_time"  validate:"required,hhmm"`
	EndTime     string  `json:"end_time"    validate:"required,hhmm"`
	Shift       *int    `json:"shift"       validate:"omitempty,oneof=1 2"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r CreateScheduleRequest) ToModel() (model.ScheduleModel, error) {
	m := model.ScheduleModel{
		ScheduleGroupID:     uuid.MustParse(strings.TrimSpace(r.GroupID)),
		ScheduleTeacherID:   uuid.MustParse(strings.TrimSpace(r.TeacherID)),
		ScheduleSubjectID:   uuid.MustParse(strings.TrimSpace(r.SubjectID)),
		ScheduleRoom:        strings.TrimSpace(r.Room),
		ScheduleDayOfWeek:   r.DayOfWeek,
		ScheduleStartTime:   dbtime.NormalizeHM(r.StartTime),
		ScheduleEndTime:     dbtime.NormalizeHM(r.EndTime),
		ScheduleDescription: helper.TrimPtr(r.Description),
	}
	err := finalize(&m, r.Shift)
	return m, err
}

type UpdateScheduleRequest struct {
	GroupID     *string `json:"group_id"    validate:"omitempty,uuid"`
	TeacherID   *string `json:"teacher_id"  validate:"omitempty,uuid"`
	SubjectID   *string `json:"subject_id"  validate:"omitempty,uuid"`
	Room        *string `json:"room"        validate:"omitempty,min=1,max=40"`
	DayOfWeek   *int    `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	StartTime   *string `json:"start_time"  validate:"omitempty,hhmm"`
	EndTime     *string `json:"end_time"    validate:"omitempty,hhmm"`
	Shift       *int    `json:"shift"       validate:"omitempty,oneof=1 2"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r UpdateScheduleRequest) Apply(m *model.ScheduleModel) error {
	if r.GroupID != nil {
		m.ScheduleGroupID = uuid.MustParse(strings.TrimSpace(*r.GroupID))
	}
	if r.TeacherID != nil {
		m.ScheduleTeacherID = uuid.MustParse(strings.TrimSpace(*r.TeacherID))
	}
	if r.SubjectID != nil {
		m.ScheduleSubjectID = uuid.MustParse(strings.TrimSpace(*r.SubjectID))
	}
	if r.Room != nil {
		m.ScheduleRoom = strings.TrimSpace(*r.Room)
	}
	if r.DayOfWeek != nil {
		m.ScheduleDayOfWeek = *r.DayOfWeek
	}
	startChanged := false
	if r.StartTime != nil {
		m.ScheduleStartTime = dbtime.NormalizeHM(*r.StartTime)
		startChanged = true
	}
	if r.EndTime != nil {
		m.ScheduleEndTime = dbtime.NormalizeHM(*r.EndTime)
	}
	if r.Description != nil {
		m.ScheduleDescription = helper.TrimPtr(r.Description)
	}
	if startChanged && r.Shift == nil {
		m.ScheduleShift = 0
	}
	return finalize(m, r.Shift)
}

func finalize(m *model.ScheduleModel, explicitShift *int) error {
	start, err := dbtime.ParseHM(m.ScheduleStartTime)
	if err != nil {
		return err
	}
	end, err := dbtime.ParseHM(m.ScheduleEndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	switch {
	case explicitShift != nil:
		m.ScheduleShift = *explicitShift
	case m.ScheduleShift == 0:
		m.ScheduleShift = dbtime.DetermineShift(m.ScheduleStartTime)
		if m.ScheduleShift == 0 {
			return errors.New("start_time is outside both shifts, pass shift explicitly")
		}
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ScheduleResponse struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Room        string    `json:"room"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Shift       int       `json:"shift"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Group   *groupDTO.GroupResponse     `json:"group,omitempty"`
	Teacher *teacherDTO.TeacherResponse `json:"teacher,omitempty"`
	Subject *subjectDTO.SubjectResponse `json:"subject,omitempty"`
}

func NewScheduleResponse(m *model.ScheduleModel, refs *Refs) ScheduleResponse {
	out := ScheduleResponse{
		ID:          m.ScheduleID,
		GroupID:     m.ScheduleGroupID,
		TeacherID:   m.ScheduleTeacherID,
		SubjectID:   m.ScheduleSubjectID,
		Room:        m.ScheduleRoom,
		DayOfWeek:   m.ScheduleDayOfWeek,
		StartTime:   m.ScheduleStartTime,
		EndTime:     m.ScheduleEndTime,
		Shift:       m.ScheduleShift,
		Description: m.ScheduleDescription,
		CreatedAt:   m.ScheduleCreatedAt,
		UpdatedAt:   m.ScheduleUpdatedAt,
	}
	if refs != nil {
		if g, ok := refs.Groups[m.ScheduleGroupID]; ok {
			out.Group = &g
		}
		if t, ok := refs.Teachers[m.ScheduleTeacherID]; ok {
			out.Teacher = &t
		}
		if s, ok := refs.Subjects[m.ScheduleSubjectID]; ok {
			out.Subject = &s
		}
	}
	return out
}

func NewScheduleResponses(ms []model.ScheduleModel, refs *Refs) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewScheduleResponse(&ms[i], refs))
	}
	return out
}
