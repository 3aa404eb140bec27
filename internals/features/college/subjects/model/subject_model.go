// file: internals/features/college/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID          uuid.UUID `json:"subject_id"                    gorm:"column:subject_id;type:uuid;primaryKey"`
	SubjectName        string    `json:"subject_name"                  gorm:"column:subject_name;type:varchar(160);not null"`
	SubjectCode        string    `json:"subject_code"                  gorm:"column:subject_code;type:varchar(40);not null"` // e.g. "ОН 3.1"
	SubjectDescription *string   `json:"subject_description,omitempty" gorm:"column:subject_description;type:text"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (s *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if s.SubjectID == uuid.Nil {
		s.SubjectID = uuid.New()
	}
	return nil
}
