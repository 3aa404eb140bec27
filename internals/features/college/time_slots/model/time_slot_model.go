// file: internals/features/college/time_slots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSlotModel struct {
	TimeSlotID        uuid.UUID `json:"time_slot_id"         gorm:"column:time_slot_id;type:uuid;primaryKey"`
	TimeSlotStartTime string    `json:"time_slot_start_time" gorm:"column:time_slot_start_time;type:varchar(5);not null"` // "12:40"
	TimeSlotEndTime   string    `json:"time_slot_end_time"   gorm:"column:time_slot_end_time;type:varchar(5);not null"`
	TimeSlotShift     int       `json:"time_slot_shift"      gorm:"column:time_slot_shift;not null;index"`
	TimeSlotLabel     string    `json:"time_slot_label"      gorm:"column:time_slot_label;type:varchar(40);not null"` // "12:40-14:00"
	TimeSlotIsActive  bool      `json:"time_slot_is_active"  gorm:"column:time_slot_is_active;not null"`

	TimeSlotCreatedAt time.Time `json:"time_slot_created_at" gorm:"column:time_slot_created_at;type:timestamptz;not null;autoCreateTime"`
	TimeSlotUpdatedAt time.Time `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }

func (t *TimeSlotModel) BeforeCreate(tx *gorm.DB) error {
	if t.TimeSlotID == uuid.Nil {
		t.TimeSlotID = uuid.New()
	}
	return nil
}

func DefaultLabel(start, end string) string { return start + "-" + end }
