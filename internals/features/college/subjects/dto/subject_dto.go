// file: internals/features/college/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	helper "collegeschedule_backend/internals/helpers"
	model "collegeschedule_backend/internals/features/college/subjects/model"
)

type CreateSubjectRequest struct {
	Name        string  `json:"name"        validate:"required,max=160"`
	Code        string  `json:"code"        validate:"required,max=40"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectName:        strings.TrimSpace(r.Name),
		SubjectCode:        strings.TrimSpace(r.Code),
		SubjectDescription: helper.TrimPtr(r.Description),
	}
}

type UpdateSubjectRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=160"`
	Code        *string `json:"code"        validate:"omitempty,min=1,max=40"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.Name != nil {
		if v := strings.TrimSpace(*r.Name); v != "" {
			m.SubjectName = v
		}
	}
	if r.Code != nil {
		if v := strings.TrimSpace(*r.Code); v != "" {
			m.SubjectCode = v
		}
	}
	if r.Description != nil {
		m.SubjectDescription = helper.TrimPtr(r.Description)
	}
}

type SubjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewSubjectResponse(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:          m.SubjectID,
		Name:        m.SubjectName,
		Code:        m.SubjectCode,
		Description: m.SubjectDescription,
		CreatedAt:   m.SubjectCreatedAt,
		UpdatedAt:   m.SubjectUpdatedAt,
	}
}

func NewSubjectResponses(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSubjectResponse(&ms[i]))
	}
	return out
}
