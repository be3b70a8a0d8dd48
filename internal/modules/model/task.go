package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   *int64       `gorm:"index:ix_task_project_id_status,priority:1" json:"projectId"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:text;not null;default:'todo';index:ix_task_project_id_status,priority:2" json:"status"`
	Priority    TaskPriority `gorm:"type:text;not null;default:'medium'" json:"priority"`
	DueDate     *string      `gorm:"type:text" json:"dueDate"`
	Order       int          `gorm:"column:sort_order;not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Task <-> TaskLog
	Logs []TaskLog `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"logs,omitempty"`
}

func (Task) TableName() string { return "tasks" }
