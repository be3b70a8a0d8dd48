package model

import "time"

type Reference struct {
	ID              int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskLogDetailID int64   `gorm:"not null;index" json:"taskLogDetailId"`
	URL             string  `gorm:"column:url;type:text;not null" json:"url"`
	Title           *string `gorm:"type:text" json:"title"`
	LinkType        *string `gorm:"type:text" json:"linkType"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Reference) TableName() string { return "task_references" }
