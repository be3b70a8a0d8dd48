package model

import "time"

type TaskLog struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID      *int64  `gorm:"index" json:"taskId"`
	Title       string  `gorm:"type:text;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	StartTime   *string `gorm:"type:text" json:"startTime"`
	EndTime     *string `gorm:"type:text" json:"endTime"`
	LogDate     *string `gorm:"type:text;index" json:"logDate"`
	Timezone    *string `gorm:"type:text" json:"timezone"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// TaskLog <-> TaskLogDetail
	Details []TaskLogDetail `gorm:"foreignKey:TaskLogID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"details,omitempty"`
}

func (TaskLog) TableName() string { return "task_logs" }
