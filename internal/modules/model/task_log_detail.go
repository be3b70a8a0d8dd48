package model

import "time"

type TaskLogDetail struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskLogID int64   `gorm:"not null;index" json:"taskLogId"`
	Content   *string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// TaskLogDetail <-> Reference
	References []Reference `gorm:"foreignKey:TaskLogDetailID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"references,omitempty"`
}

func (TaskLogDetail) TableName() string { return "task_log_details" }
