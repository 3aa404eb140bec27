package dto

import (
	"strings"

	"collegeschedule_backend/internals/features/board/model"
	helper "collegeschedule_backend/internals/helpers"
)

// ViewQuery selects the board column; zero means keep the current one.
type ViewQuery struct {
	Weekday int `query:"weekday" validate:"omitempty,min=1,max=7"`
	Shift   int `query:"shift"   validate:"omitempty,oneof=1 2"`
}

// CreateTemplateRequest is the "new lesson" form on the board.
type CreateTemplateRequest struct {
	GroupID     string  `json:"group_id"    form:"group_id"    validate:"required,uuid"`
	TeacherID   string  `json:"teacher_id"  form:"teacher_id"  validate:"required,uuid"`
	SubjectID   string  `json:"subject_id"  form:"subject_id"  validate:"required,uuid"`
	Room        string  `json:"room"        form:"room"        validate:"required,max=40"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=500"`
}

func (r CreateTemplateRequest) ToInput() model.LessonInput {
	return model.LessonInput{
		GroupID:     strings.TrimSpace(r.GroupID),
		TeacherID:   strings.TrimSpace(r.TeacherID),
		SubjectID:   strings.TrimSpace(r.SubjectID),
		Room:        strings.TrimSpace(r.Room),
		Description: helper.TrimPtr(r.Description),
	}
}

// UpdateLessonRequest is the board's edit form; blank fields are left as they are.
type UpdateLessonRequest struct {
	GroupID     *string `json:"group_id"    form:"group_id"    validate:"omitempty,uuid"`
	TeacherID   *string `json:"teacher_id"  form:"teacher_id"  validate:"omitempty,uuid"`
	SubjectID   *string `json:"subject_id"  form:"subject_id"  validate:"omitempty,uuid"`
	Room        *string `json:"room"        form:"room"        validate:"omitempty,max=40"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=500"`
}

func (r UpdateLessonRequest) ToPatch() model.LessonPatch {
	return model.LessonPatch{
		GroupID:     helper.TrimPtr(r.GroupID),
		TeacherID:   helper.TrimPtr(r.TeacherID),
		SubjectID:   helper.TrimPtr(r.SubjectID),
		Room:        helper.TrimPtr(r.Room),
		Description: helper.TrimPtr(r.Description),
	}
}

type HistoryQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	GroupID   string `query:"group_id"`
	TeacherID string `query:"teacher_id"`
}
