// file: internals/features/college/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleModel is a weekly recurring entry: same group/teacher/subject every DayOfWeek.
type ScheduleModel struct {
	ScheduleID        uuid.UUID `json:"schedule_id"         gorm:"column:schedule_id;type:uuid;primaryKey"`
	ScheduleGroupID   uuid.UUID `json:"schedule_group_id"   gorm:"column:schedule_group_id;type:uuid;not null;index"`
	ScheduleTeacherID uuid.UUID `json:"schedule_teacher_id" gorm:"column:schedule_teacher_id;type:uuid;not null;index"`
	ScheduleSubjectID uuid.UUID `json:"schedule_subject_id" gorm:"column:schedule_subject_id;type:uuid;not null;index"`
	ScheduleRoom      string    `json:"schedule_room"       gorm:"column:schedule_room;type:varchar(40);not null"`

	ScheduleDayOfWeek int    `json:"schedule_day_of_week" gorm:"column:schedule_day_of_week;not null"` // 1..7
	ScheduleStartTime string `json:"schedule_start_time"  gorm:"column:schedule_start_time;type:varchar(5);not null"`
	ScheduleEndTime   string `json:"schedule_end_time"    gorm:"column:schedule_end_time;type:varchar(5);not null"`
	ScheduleShift     int    `json:"schedule_shift"       gorm:"column:schedule_shift;not null"` // 1|2

	ScheduleDescription *string `json:"schedule_description,omitempty" gorm:"column:schedule_description;type:text"`

	ScheduleCreatedAt time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at;type:timestamptz;not null;autoCreateTime"`
	ScheduleUpdatedAt time.Time `json:"schedule_updated_at" gorm:"column:schedule_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (s *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.ScheduleID == uuid.Nil {
		s.ScheduleID = uuid.New()
	}
	return nil
}
