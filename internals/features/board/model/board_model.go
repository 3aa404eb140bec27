// Package model holds the board's view of backend records.
// IDs stay opaque strings: the board never interprets them.
package model

import (
	"errors"
	"strings"
	"time"

	"collegeschedule_backend/internals/constants"
)

type Group struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Teacher struct {
	ID        string   `json:"id"`
	IIN       string   `json:"iin"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Subjects  []string `json:"subjects"`
}

func (t Teacher) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

type Subject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
}

type TimeSlot struct {
	ID        string `json:"id"`
	Shift     int    `json:"shift"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
	IsActive  bool   `json:"is_active"`
}

// LessonRecord is the wire shape shared by templates and instances.
type LessonRecord struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	TeacherID   string    `json:"teacher_id"`
	SubjectID   string    `json:"subject_id"`
	Room        string    `json:"room"`
	Description *string   `json:"description,omitempty"`
	Date        *string   `json:"date,omitempty"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Shift       *int      `json:"shift,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LessonInput is the create payload; nil date/time/shift makes a template.
type LessonInput struct {
	GroupID     string  `json:"group_id"`
	TeacherID   string  `json:"teacher_id"`
	SubjectID   string  `json:"subject_id"`
	Room        string  `json:"room"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Shift       *int    `json:"shift"`
}

// LessonPatch is the PUT /lessons/{id} payload; nil fields keep their value.
type LessonPatch struct {
	GroupID     *string `json:"group_id,omitempty"`
	TeacherID   *string `json:"teacher_id,omitempty"`
	SubjectID   *string `json:"subject_id,omitempty"`
	Room        *string `json:"room,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p LessonPatch) IsEmpty() bool {
	return p.GroupID == nil && p.TeacherID == nil && p.SubjectID == nil && p.Room == nil && p.Description == nil
}

// LessonQuery mirrors GET /lessons filters; zero values are omitted.
type LessonQuery struct {
	StartDate string
	EndDate   string
	GroupID   string
	TeacherID string
	Shift     int
}

/* =========================================================
   Lesson variants
   ========================================================= */

// Lesson is either a Template or an Instance; switch on the concrete type.
type Lesson interface {
	Base() LessonBase
	isLesson()
}

type LessonBase struct {
	ID          string
	GroupID     string
	TeacherID   string
	SubjectID   string
	Room        string
	Description *string
}

// Triple identifies "the same lesson" for duplicate checks.
type Triple struct {
	GroupID, TeacherID, SubjectID string
}

func (b LessonBase) Triple() Triple {
	return Triple{GroupID: b.GroupID, TeacherID: b.TeacherID, SubjectID: b.SubjectID}
}

type Template struct {
	LessonBase
}

type Instance struct {
	LessonBase
	Date      time.Time // calendar date, UTC midnight
	StartTime string
	EndTime   string
	Shift     int // 0 when the backend left it unset
}

func (t Template) Base() LessonBase { return t.LessonBase }
func (Template) isLesson()          {}
func (i Instance) Base() LessonBase { return i.LessonBase }
func (Instance) isLesson()          {}

func (i Instance) DateString() string { return i.Date.Format(constants.DateLayout) }

// Weekday is ISO: Monday=1 ... Sunday=7.
func (i Instance) Weekday() int {
	if wd := int(i.Date.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

var ErrBadDate = errors.New("lesson date is not YYYY-MM-DD")

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Classify turns a wire record into its variant. Presence of a date is the only discriminator.
func Classify(r LessonRecord) (Lesson, error) {
	base := LessonBase{
		ID:          r.ID,
		GroupID:     r.GroupID,
		TeacherID:   r.TeacherID,
		SubjectID:   r.SubjectID,
		Room:        r.Room,
		Description: r.Description,
	}
	raw := strings.TrimSpace(deref(r.Date))
	if raw == "" {
		return Template{LessonBase: base}, nil
	}
	if len(raw) > 10 {
		raw = raw[:10] // tolerate RFC3339 timestamps
	}
	d, err := time.Parse(constants.DateLayout, raw)
	if err != nil {
		return nil, ErrBadDate
	}
	inst := Instance{
		LessonBase: base,
		Date:       d,
		StartTime:  deref(r.StartTime),
		EndTime:    deref(r.EndTime),
	}
	if r.Shift != nil {
		inst.Shift = *r.Shift
	}
	return inst, nil
}

// InstanceFrom copies t onto a concrete date and slot; t itself is never touched.
func InstanceFrom(t Template, date string, slot TimeSlot, shift int) LessonInput {
	start, end := slot.StartTime, slot.EndTime
	return LessonInput{
		GroupID:     t.GroupID,
		TeacherID:   t.TeacherID,
		SubjectID:   t.SubjectID,
		Room:        t.Room,
		Description: t.Description,
		Date:        &date,
		StartTime:   &start,
		EndTime:     &end,
		Shift:       &shift,
	}
}
