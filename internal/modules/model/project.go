package model

import "time"

type Project struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:text;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Color       *string `gorm:"type:text" json:"color"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Project <-> Task
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks,omitempty"`
}

func (Project) TableName() string { return "projects" }
