package schema

import (
	"bytes"

	"github.com/bytedance/sonic"
	"github.com/time-tracker/api/internal/modules/model"
)

// IDInput addresses one row. It is shared by get/delete procedures and the
// parent-scoped listings (getByTaskLogId, getByTaskLogDetailId, getByTaskId).
type IDInput struct {
	ID int64 `json:"id" validate:"required"`
}

// Project

type CreateProjectInput struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type UpdateProjectInput struct {
	ID          int64   `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// Task

type CreateTaskInput struct {
	ProjectID   *int64              `json:"projectId"`
	Title       string              `json:"title" validate:"required,min=1"`
	Description *string             `json:"description"`
	Status      *model.TaskStatus   `json:"status" validate:"omitnil,oneof=todo in_progress done"`
	Priority    *model.TaskPriority `json:"priority" validate:"omitnil,oneof=low medium high"`
	DueDate     *string             `json:"dueDate"`
	Order       *int                `json:"order"`
}

type UpdateTaskInput struct {
	ID          int64               `json:"id" validate:"required"`
	ProjectID   *int64              `json:"projectId"`
	Title       *string             `json:"title" validate:"omitnil,min=1"`
	Description *string             `json:"description"`
	Status      *model.TaskStatus   `json:"status" validate:"omitnil,oneof=todo in_progress done"`
	Priority    *model.TaskPriority `json:"priority" validate:"omitnil,oneof=low medium high"`
	DueDate     *string             `json:"dueDate"`
	Order       *int                `json:"order"`
}

type TasksByProjectInput struct {
	ProjectID int64               `json:"projectId" validate:"required"`
	Status    *model.TaskStatus   `json:"status" validate:"omitnil,oneof=todo in_progress done"`
	Priority  *model.TaskPriority `json:"priority" validate:"omitnil,oneof=low medium high"`
}

type TaskOrderItem struct {
	ID    int64 `json:"id" validate:"required"`
	Order int   `json:"order"`
}

// UpdateTaskOrderInput is sent either as a bare array or as {"items": [...]}.
type UpdateTaskOrderInput struct {
	Items []TaskOrderItem `json:"items" validate:"required,min=1,dive"`
}

func (in *UpdateTaskOrderInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return sonic.Unmarshal(trimmed, &in.Items)
	}
	type plain UpdateTaskOrderInput
	return sonic.Unmarshal(trimmed, (*plain)(in))
}

// TaskLog

type CreateTaskLogInput struct {
	TaskID      *int64  `json:"taskId"`
	Title       string  `json:"title" validate:"required,min=1"`
	Description *string `json:"description"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	LogDate     *string `json:"logDate"`
	Timezone    *string `json:"timezone"`
}

type UpdateTaskLogInput struct {
	ID          int64   `json:"id" validate:"required"`
	TaskID      *int64  `json:"taskId"`
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	LogDate     *string `json:"logDate"`
	Timezone    *string `json:"timezone"`
}

// TaskLogDetail

type CreateTaskLogDetailInput struct {
	TaskLogID int64   `json:"taskLogId" validate:"required"`
	Content   *string `json:"content"`
}

type UpdateTaskLogDetailInput struct {
	ID        int64   `json:"id" validate:"required"`
	TaskLogID *int64  `json:"taskLogId"`
	Content   *string `json:"content"`
}

// Reference

type CreateReferenceInput struct {
	TaskLogDetailID int64   `json:"taskLogDetailId" validate:"required"`
	URL             string  `json:"url" validate:"required,url"`
	Title           *string `json:"title"`
	LinkType        *string `json:"linkType"`
}

type UpdateReferenceInput struct {
	ID              int64   `json:"id" validate:"required"`
	TaskLogDetailID *int64  `json:"taskLogDetailId"`
	URL             *string `json:"url" validate:"omitnil,url"`
	Title           *string `json:"title"`
	LinkType        *string `json:"linkType"`
}

// Calendar

type CalendarRangeInput struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

type CalendarDayInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// DeleteOutput acknowledges a physical delete.
type DeleteOutput struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type UpdateTaskOrderOutput struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}
