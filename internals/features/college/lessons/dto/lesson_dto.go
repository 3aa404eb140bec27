// file: internals/features/college/lessons/dto/lesson_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"collegeschedule_backend/internals/constants"
	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	model "collegeschedule_backend/internals/features/college/lessons/model"
	subjectDTO "collegeschedule_backend/internals/features/college/subjects/dto"
	teacherDTO "collegeschedule_backend/internals/features/college/teachers/dto"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

var (
	ErrInstanceNeedsTime = errors.New("a dated lesson needs start_time and end_time")
	ErrEndBeforeStart    = errors.New("end_time must be after start_time")
	ErrTimeWithoutDate   = errors.New("start_time/end_time require a date")
)

/* =========================================================
   Helpers
   ========================================================= */

func parseDate(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDate(*s)
	if err != nil {
		return nil, errors.New("invalid date format, use YYYY-MM-DD")
	}
	d := datatypes.Date(t)
	return &d, nil
}

func normTime(s *string) *string {
	v := helper.TrimPtr(s)
	if v == nil {
		return nil
	}
	n := dbtime.NormalizeHM(*v)
	return &n
}

// finalize enforces the template/instance shape and fills the derived shift.
func finalize(m *model.LessonModel, explicitShift *int) error {
	hasStart, hasEnd := m.LessonStartTime != nil, m.LessonEndTime != nil

	if m.LessonDate == nil {
		if hasStart || hasEnd {
			return ErrTimeWithoutDate
		}
		m.LessonShift = nil
		return nil
	}
	if !hasStart || !hasEnd {
		return ErrInstanceNeedsTime
	}
	start, err := dbtime.ParseHM(*m.LessonStartTime)
	if err != nil {
		return err
	}
	end, err := dbtime.ParseHM(*m.LessonEndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrEndBeforeStart
	}

	switch {
	case explicitShift != nil:
		s := *explicitShift
		m.LessonShift = &s
	case m.LessonShift == nil:
		if s := dbtime.DetermineShift(*m.LessonStartTime); s != 0 {
			m.LessonShift = &s
		}
	}
	return nil
}

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateLessonRequest struct {
	GroupID     string  `json:"group_id"    validate:"required,uuid"`
	TeacherID   string  `json:"teacher_id"  validate:"required,uuid"`
	SubjectID   string  `json:"subject_id"  validate:"required,uuid"`
	Room        string  `json:"room"        validate:"required,max=40"`
	Date        *string `json:"date"        validate:"omitempty"`
	StartTime   *string `json:"start_time"  validate:"omitempty,hhmm"`
	EndTime     *string `json:"end_time"    validate:"omitempty,hhmm"`
	Shift       *int    `json:"shift"       validate:"omitempty,oneof=1 2"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r CreateLessonRequest) ToModel() (model.LessonModel, error) {
	m := model.LessonModel{
		LessonGroupID:     uuid.MustParse(strings.TrimSpace(r.GroupID)),
		LessonTeacherID:   uuid.MustParse(strings.TrimSpace(r.TeacherID)),
		LessonSubjectID:   uuid.MustParse(strings.TrimSpace(r.SubjectID)),
		LessonRoom:        strings.TrimSpace(r.Room),
		LessonStartTime:   normTime(r.StartTime),
		LessonEndTime:     normTime(r.EndTime),
		LessonDescription: helper.TrimPtr(r.Description),
	}
	d, err := parseDate(r.Date)
	if err != nil {
		return m, err
	}
	m.LessonDate = d
	err = finalize(&m, r.Shift)
	return m, err
}

// UpdateLessonRequest is partial; absent fields keep their value.
type UpdateLessonRequest struct {
	GroupID     *string `json:"group_id"    validate:"omitempty,uuid"`
	TeacherID   *string `json:"teacher_id"  validate:"omitempty,uuid"`
	SubjectID   *string `json:"subject_id"  validate:"omitempty,uuid"`
	Room        *string `json:"room"        validate:"omitempty,min=1,max=40"`
	Date        *string `json:"date"        validate:"omitempty"`
	StartTime   *string `json:"start_time"  validate:"omitempty,hhmm"`
	EndTime     *string `json:"end_time"    validate:"omitempty,hhmm"`
	Shift       *int    `json:"shift"       validate:"omitempty,oneof=1 2"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r UpdateLessonRequest) Apply(m *model.LessonModel) error {
	if r.GroupID != nil {
		m.LessonGroupID = uuid.MustParse(strings.TrimSpace(*r.GroupID))
	}
	if r.TeacherID != nil {
		m.LessonTeacherID = uuid.MustParse(strings.TrimSpace(*r.TeacherID))
	}
	if r.SubjectID != nil {
		m.LessonSubjectID = uuid.MustParse(strings.TrimSpace(*r.SubjectID))
	}
	if r.Room != nil {
		m.LessonRoom = strings.TrimSpace(*r.Room)
	}
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		d, err := parseDate(r.Date)
		if err != nil {
			return err
		}
		m.LessonDate = d
	}
	timesChanged := false
	if v := normTime(r.StartTime); v != nil {
		m.LessonStartTime = v
		timesChanged = true
	}
	if v := normTime(r.EndTime); v != nil {
		m.LessonEndTime = v
	}
	if r.Description != nil {
		m.LessonDescription = helper.TrimPtr(r.Description)
	}
	if timesChanged && r.Shift == nil {
		m.LessonShift = nil // re-derived from the new start
	}
	return finalize(m, r.Shift)
}

/* =========================================================
   FILTER
   ========================================================= */

// LessonFilter fields are AND-combined; zero values are ignored.
type LessonFilter struct {
	Date          *time.Time
	StartDate     *time.Time
	EndDate       *time.Time
	GroupID       *uuid.UUID
	TeacherID     *uuid.UUID
	Shift         int
	OnlyInstances bool
}

type ListLessonsQuery struct {
	Date      string `query:"date"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	GroupID   string `query:"group_id"`
	TeacherID string `query:"teacher_id"`
	Shift     int    `query:"shift"`
}

func optDate(name, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDate(v)
	if err != nil {
		return nil, errors.New("invalid " + name + ", use YYYY-MM-DD")
	}
	return &t, nil
}

func optUUID(name, v string) (*uuid.UUID, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &id, nil
}

func (q ListLessonsQuery) ToFilter() (LessonFilter, error) {
	var (
		f   LessonFilter
		err error
	)
	if f.Date, err = optDate("date", q.Date); err != nil {
		return f, err
	}
	if f.StartDate, err = optDate("start_date", q.StartDate); err != nil {
		return f, err
	}
	if f.EndDate, err = optDate("end_date", q.EndDate); err != nil {
		return f, err
	}
	if f.GroupID, err = optUUID("group_id", q.GroupID); err != nil {
		return f, err
	}
	if f.TeacherID, err = optUUID("teacher_id", q.TeacherID); err != nil {
		return f, err
	}
	if q.Shift != 0 && !constants.IsValidShift(q.Shift) {
		return f, errors.New("shift must be 1 or 2")
	}
	f.Shift = q.Shift
	return f, nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LessonResponse struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Room        string    `json:"room"`
	Date        *string   `json:"date,omitempty"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Shift       *int      `json:"shift,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Group   *groupDTO.GroupResponse     `json:"group,omitempty"`
	Teacher *teacherDTO.TeacherResponse `json:"teacher,omitempty"`
	Subject *subjectDTO.SubjectResponse `json:"subject,omitempty"`
}

// Refs carries the embedded group/teacher/subject records, loaded in bulk.
type Refs struct {
	Groups   map[uuid.UUID]groupDTO.GroupResponse
	Teachers map[uuid.UUID]teacherDTO.TeacherResponse
	Subjects map[uuid.UUID]subjectDTO.SubjectResponse
}

func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(constants.DateLayout)
	return &s
}

func NewLessonResponse(m *model.LessonModel, refs *Refs) LessonResponse {
	out := LessonResponse{
		ID:          m.LessonID,
		GroupID:     m.LessonGroupID,
		TeacherID:   m.LessonTeacherID,
		SubjectID:   m.LessonSubjectID,
		Room:        m.LessonRoom,
		Date:        FormatDate(m.LessonDate),
		StartTime:   m.LessonStartTime,
		EndTime:     m.LessonEndTime,
		Shift:       m.LessonShift,
		Description: m.LessonDescription,
		CreatedAt:   m.LessonCreatedAt,
		UpdatedAt:   m.LessonUpdatedAt,
	}
	if refs != nil {
		if g, ok := refs.Groups[m.LessonGroupID]; ok {
			out.Group = &g
		}
		if t, ok := refs.Teachers[m.LessonTeacherID]; ok {
			out.Teacher = &t
		}
		if s, ok := refs.Subjects[m.LessonSubjectID]; ok {
			out.Subject = &s
		}
	}
	return out
}

func NewLessonResponses(ms []model.LessonModel, refs *Refs) []LessonResponse {
	out := make([]LessonResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewLessonResponse(&ms[i], refs))
	}
	return out
}
