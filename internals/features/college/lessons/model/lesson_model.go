// file: internals/features/college/lessons/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonModel stores both templates (LessonDate NULL) and calendar instances.
type LessonModel struct {
	LessonID        uuid.UUID `json:"lesson_id"         gorm:"column:lesson_id;type:uuid;primaryKey"`
	LessonGroupID   uuid.UUID `json:"lesson_group_id"   gorm:"column:lesson_group_id;type:uuid;not null;index"`
	LessonTeacherID uuid.UUID `json:"lesson_teacher_id" gorm:"column:lesson_teacher_id;type:uuid;not null;index"`
	LessonSubjectID uuid.UUID `json:"lesson_subject_id" gorm:"column:lesson_subject_id;type:uuid;not null;index"`
	LessonRoom      string    `json:"lesson_room"       gorm:"column:lesson_room;type:varchar(40);not null"`

	LessonDate      *datatypes.Date `json:"lesson_date,omitempty"       gorm:"column:lesson_date;type:date;index"`
	LessonStartTime *string         `json:"lesson_start_time,omitempty" gorm:"column:lesson_start_time;type:varchar(5)"`
	LessonEndTime   *string         `json:"lesson_end_time,omitempty"   gorm:"column:lesson_end_time;type:varchar(5)"`
	LessonShift     *int            `json:"lesson_shift,omitempty"      gorm:"column:lesson_shift"`

	LessonDescription *string `json:"lesson_description,omitempty" gorm:"column:lesson_description;type:text"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;type:timestamptz;not null;autoCreateTime"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at" gorm:"column:lesson_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (LessonModel) TableName() string { return "lessons" }

func (l *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if l.LessonID == uuid.Nil {
		l.LessonID = uuid.New()
	}
	return nil
}

func (l LessonModel) IsTemplate() bool { return l.LessonDate == nil }
