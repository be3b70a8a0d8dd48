package repo

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"gorm.io/gorm"
)

type CalendarRepo interface {
	Range(ctx context.Context, from, to string) ([]model.CalendarEntry, error)
	Day(ctx context.Context, date string) ([]model.CalendarEntry, error)
}

type calendarRepo struct{ db *gorm.DB }

func NewCalendarRepo(db *gorm.DB) CalendarRepo {
	return &calendarRepo{db: db}
}

const calendarColumns = `task_logs.id, task_logs.task_id, task_logs.title,
	task_logs.start_time, task_logs.end_time, task_logs.log_date, task_logs.timezone,
	tasks.title AS task_title, tasks.project_id,
	projects.name AS project_name, projects.color AS project_color`

// entries joins logs to their task (logs without a task are dropped) and,
// when present, the task's project.
func (r *calendarRepo) entries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("task_logs").
		Select(calendarColumns).
		Joins("JOIN tasks ON tasks.id = task_logs.task_id").
		Joins("LEFT JOIN projects ON projects.id = tasks.project_id")
}

func (r *calendarRepo) Range(ctx context.Context, from, to string) ([]model.CalendarEntry, error) {
	out := []model.CalendarEntry{}
	return out, r.entries(ctx).
		Where("task_logs.log_date >= ? AND task_logs.log_date <= ?", from, to).
		Order("task_logs.log_date ASC, task_logs.start_time ASC, task_logs.id ASC").
		Scan(&out).Error
}

func (r *calendarRepo) Day(ctx context.Context, date string) ([]model.CalendarEntry, error) {
	out := []model.CalendarEntry{}
	return out, r.entries(ctx).
		Where("task_logs.log_date = ?", date).
		Order("task_logs.start_time ASC, task_logs.id ASC").
		Scan(&out).Error
}
