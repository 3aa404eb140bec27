// file: internals/features/college/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	model "collegeschedule_backend/internals/features/college/students/model"
)

type CreateStudentRequest struct {
	IIN       string `json:"iin"        validate:"required,iin"`
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name"  validate:"required,max=80"`
	GroupID   string `json:"group_id"   validate:"required,uuid"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	gid, _ := uuid.Parse(strings.TrimSpace(r.GroupID))
	return model.StudentModel{
		StudentIIN:       strings.TrimSpace(r.IIN),
		StudentFirstName: strings.TrimSpace(r.FirstName),
		StudentLastName:  strings.TrimSpace(r.LastName),
		StudentGroupID:   gid,
	}
}

type UpdateStudentRequest struct {
	IIN       *string `json:"iin"        validate:"omitempty,iin"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1,max=80"`
	GroupID   *string `json:"group_id"   validate:"omitempty,uuid"`
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.IIN != nil {
		m.StudentIIN = strings.TrimSpace(*r.IIN)
	}
	if r.FirstName != nil {
		m.StudentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		m.StudentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.GroupID != nil {
		if gid, err := uuid.Parse(strings.TrimSpace(*r.GroupID)); err == nil {
			m.StudentGroupID = gid
		}
	}
}

type StudentResponse struct {
	ID        uuid.UUID               `json:"id"`
	IIN       string                  `json:"iin"`
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	GroupID   uuid.UUID               `json:"group_id"`
	Group     *groupDTO.GroupResponse `json:"group,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func NewStudentResponse(m *model.StudentModel, group *groupDTO.GroupResponse) StudentResponse {
	return StudentResponse{
		ID:        m.StudentID,
		IIN:       m.StudentIIN,
		FirstName: m.StudentFirstName,
		LastName:  m.StudentLastName,
		GroupID:   m.StudentGroupID,
		Group:     group,
		CreatedAt: m.StudentCreatedAt,
		UpdatedAt: m.StudentUpdatedAt,
	}
}
