// file: internals/features/college/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID        uuid.UUID `json:"teacher_id"         gorm:"column:teacher_id;type:uuid;primaryKey"`
	TeacherIIN       string    `json:"teacher_iin"        gorm:"column:teacher_iin;type:varchar(12);not null;uniqueIndex"`
	TeacherFirstName string    `json:"teacher_first_name" gorm:"column:teacher_first_name;type:varchar(80);not null"`
	TeacherLastName  string    `json:"teacher_last_name"  gorm:"column:teacher_last_name;type:varchar(80);not null"`

	// free-text subject names, not Subject ids
	TeacherSubjects pq.StringArray `json:"teacher_subjects" gorm:"column:teacher_subjects;type:text[];not null;default:'{}'"`

	TeacherCreatedAt time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at" gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.TeacherID == uuid.Nil {
		t.TeacherID = uuid.New()
	}
	return nil
}

func (t TeacherModel) FullName() string {
	return t.TeacherFirstName + " " + t.TeacherLastName
}
