// file: internals/features/college/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/text/unicode/norm"

	model "collegeschedule_backend/internals/features/college/teachers/model"
)

// NormalizeSubjects trims, NFC-normalizes and de-duplicates (case-insensitive)
// subject names, keeping the first spelling seen.
func NormalizeSubjects(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		v := norm.NFC.String(strings.TrimSpace(s))
		if v == "" {
			continue
		}
		k := strings.ToLower(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

type CreateTeacherRequest struct {
	IIN       string   `json:"iin"        validate:"required,iin"`
	FirstName string   `json:"first_name" validate:"required,max=80"`
	LastName  string   `json:"last_name"  validate:"required,max=80"`
	Subjects  []string `json:"subjects"   validate:"omitempty,dive,max=160"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherIIN:       strings.TrimSpace(r.IIN),
		TeacherFirstName: strings.TrimSpace(r.FirstName),
		TeacherLastName:  strings.TrimSpace(r.LastName),
		TeacherSubjects:  NormalizeSubjects(r.Subjects),
	}
}

type UpdateTeacherRequest struct {
	IIN       *string  `json:"iin"        validate:"omitempty,iin"`
	FirstName *string  `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  *string  `json:"last_name"  validate:"omitempty,min=1,max=80"`
	Subjects  []string `json:"subjects"   validate:"omitempty,dive,max=160"`
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.IIN != nil {
		m.TeacherIIN = strings.TrimSpace(*r.IIN)
	}
	if r.FirstName != nil {
		m.TeacherFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		m.TeacherLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Subjects != nil {
		m.TeacherSubjects = NormalizeSubjects(r.Subjects)
	}
}

type TeacherResponse struct {
	ID        uuid.UUID `json:"id"`
	IIN       string    `json:"iin"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Subjects  []string  `json:"subjects"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTeacherResponse(m *model.TeacherModel) TeacherResponse {
	subjects := []string(m.TeacherSubjects)
	if subjects == nil {
		subjects = []string{}
	}
	return TeacherResponse{
		ID:        m.TeacherID,
		IIN:       m.TeacherIIN,
		FirstName: m.TeacherFirstName,
		LastName:  m.TeacherLastName,
		Subjects:  subjects,
		CreatedAt: m.TeacherCreatedAt,
		UpdatedAt: m.TeacherUpdatedAt,
	}
}

func NewTeacherResponses(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewTeacherResponse(&ms[i]))
	}
	return out
}
