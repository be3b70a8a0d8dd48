package repo

import (
	"context"
	"strings"

	"github.com/time-tracker/api/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	List(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id int64) (*model.Project, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*model.Project, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, id int64, weekStart string) (*model.ProjectStats, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return create(ctx, r.db, p)
}

func (r *projectRepo) List(ctx context.Context) ([]*model.Project, error) {
	return list[model.Project](ctx, r.db)
}

func (r *projectRepo) Get(ctx context.Context, id int64) (*model.Project, error) {
	return get[model.Project](ctx, r.db, "Project", id)
}

func (r *projectRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.Project, error) {
	return update[model.Project](ctx, r.db, "Project", id, changes)
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	return remove[model.Project](ctx, r.db, "Project", id)
}

// Stats aggregates task and log activity of a project. weekStart is the
// YYYY-MM-DD lower bound (inclusive) for the weekly log count.
func (r *projectRepo) Stats(ctx context.Context, id int64, weekStart string) (*model.ProjectStats, error) {
	db := r.db.WithContext(ctx)
	stats := &model.ProjectStats{StatusBreakdown: []model.StatusCount{}}

	if err := db.Model(&model.Task{}).Where("project_id = ?", id).Count(&stats.TotalTasks).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", id).
		Group("status").
		Order("status").
		Scan(&stats.StatusBreakdown).Error; err != nil {
		return nil, err
	}

	projectLogs := func() *gorm.DB {
		return db.Model(&model.TaskLog{}).
			Joins("JOIN tasks ON tasks.id = task_logs.task_id").
			Where("tasks.project_id = ?", id)
	}

	if err := projectLogs().Where("task_logs.log_date >= ?", weekStart).Count(&stats.WeeklyLogs).Error; err != nil {
		return nil, err
	}

	var latest []model.TaskLog
	if err := projectLogs().
		Order("COALESCE(task_logs.log_date, '') DESC, COALESCE(task_logs.end_time, '') DESC").
		Limit(1).
		Find(&latest).Error; err != nil {
		return nil, err
	}
	if len(latest) > 0 {
		if last := strings.TrimSpace(deref(latest[0].LogDate) + " " + deref(latest[0].EndTime)); last != "" {
			stats.LastActivity = &last
		}
	}

	return stats, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
