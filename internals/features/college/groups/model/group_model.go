// file: internals/features/college/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID          uuid.UUID `json:"group_id"                    gorm:"column:group_id;type:uuid;primaryKey"`
	GroupName        string    `json:"group_name"                  gorm:"column:group_name;type:varchar(160);not null"`
	GroupCode        *string   `json:"group_code,omitempty"        gorm:"column:group_code;type:varchar(60)"`
	GroupDescription *string   `json:"group_description,omitempty" gorm:"column:group_description;type:text"`

	GroupCreatedAt time.Time `json:"group_created_at" gorm:"column:group_created_at;type:timestamptz;not null;autoCreateTime"`
	GroupUpdatedAt time.Time `json:"group_updated_at" gorm:"column:group_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (GroupModel) TableName() string { return "college_groups" }

func (g *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.GroupID == uuid.Nil {
		g.GroupID = uuid.New()
	}
	return nil
}
