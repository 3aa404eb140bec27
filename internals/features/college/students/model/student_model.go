// file: internals/features/college/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID        uuid.UUID `json:"student_id"         gorm:"column:student_id;type:uuid;primaryKey"`
	StudentIIN       string    `json:"student_iin"        gorm:"column:student_iin;type:varchar(12);not null;uniqueIndex"`
	StudentFirstName string    `json:"student_first_name" gorm:"column:student_first_name;type:varchar(80);not null"`
	StudentLastName  string    `json:"student_last_name"  gorm:"column:student_last_name;type:varchar(80);not null"`
	StudentGroupID   uuid.UUID `json:"student_group_id"   gorm:"column:student_group_id;type:uuid;not null;index"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentUpdatedAt time.Time `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
