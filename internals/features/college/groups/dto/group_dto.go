// file: internals/features/college/groups/dto/group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	helper "collegeschedule_backend/internals/helpers"
	model "collegeschedule_backend/internals/features/college/groups/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type CreateGroupRequest struct {
	Name        string  `json:"name"        validate:"required,max=160"`
	Code        *string `json:"code"        validate:"omitempty,max=60"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r CreateGroupRequest) ToModel() model.GroupModel {
	return model.GroupModel{
		GroupName:        strings.TrimSpace(r.Name),
		GroupCode:        helper.TrimPtr(r.Code),
		GroupDescription: helper.TrimPtr(r.Description),
	}
}

type UpdateGroupRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=160"`
	Code        *string `json:"code"        validate:"omitempty,max=60"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r UpdateGroupRequest) Apply(m *model.GroupModel) {
	if r.Name != nil {
		if v := strings.TrimSpace(*r.Name); v != "" {
			m.GroupName = v
		}
	}
	if r.Code != nil {
		m.GroupCode = helper.TrimPtr(r.Code)
	}
	if r.Description != nil {
		m.GroupDescription = helper.TrimPtr(r.Description)
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        *string   `json:"code,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewGroupResponse(m *model.GroupModel) GroupResponse {
	return GroupResponse{
		ID:          m.GroupID,
		Name:        m.GroupName,
		Code:        m.GroupCode,
		Description: m.GroupDescription,
		CreatedAt:   m.GroupCreatedAt,
		UpdatedAt:   m.GroupUpdatedAt,
	}
}

func NewGroupResponses(ms []model.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewGroupResponse(&ms[i]))
	}
	return out
}
