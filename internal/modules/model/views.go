package model

// All lists every table in migration order.
func All() []any {
	return []any{
		&Project{},
		&Task{},
		&TaskLog{},
		&TaskLogDetail{},
		&Reference{},
	}
}

// CalendarEntry is a task log joined with its task and (optional) project.
type CalendarEntry struct {
	ID           int64   `json:"id"`
	TaskID       *int64  `json:"taskId"`
	Title        string  `json:"title"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	LogDate      *string `json:"logDate"`
	Timezone     *string `json:"timezone"`
	TaskTitle    string  `json:"taskTitle"`
	ProjectID    *int64  `json:"projectId"`
	ProjectName  *string `json:"projectName"`
	ProjectColor *string `json:"projectColor"`
}

// TaskLogDetailWithReferences is a detail row with its references attached.
type TaskLogDetailWithReferences struct {
	TaskLogDetail
	References []Reference `json:"references"`
}

// TaskLogWithRelations is the nested read returned by taskLog.getById.
type TaskLogWithRelations struct {
	TaskLog
	Task    *Task                         `json:"task"`
	Details []TaskLogDetailWithReferences `json:"details"`
}

type StatusCount struct {
	Status TaskStatus `json:"status"`
	Count  int64      `json:"count"`
}

type ProjectStats struct {
	TotalTasks      int64         `json:"totalTasks"`
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	WeeklyLogs      int64         `json:"weeklyLogs"`
	LastActivity    *string       `json:"lastActivity"`
}

type ProjectSummary struct {
	Project Project      `json:"project"`
	Stats   ProjectStats `json:"stats"`
}
