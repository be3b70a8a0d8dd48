package repo

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"gorm.io/gorm"
)

type TaskLogRepo interface {
	Create(ctx context.Context, l *model.TaskLog) error
	List(ctx context.Context) ([]*model.TaskLog, error)
	Get(ctx context.Context, id int64) (*model.TaskLog, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*model.TaskLog, error)
	Delete(ctx context.Context, id int64) error
	ListByTask(ctx context.Context, taskID int64) ([]*model.TaskLog, error)
}

type taskLogRepo struct{ db *gorm.DB }

func NewTaskLogRepo(db *gorm.DB) TaskLogRepo {
	return &taskLogRepo{db: db}
}

func (r *taskLogRepo) Create(ctx context.Context, l *model.TaskLog) error {
	return create(ctx, r.db, l)
}

func (r *taskLogRepo) List(ctx context.Context) ([]*model.TaskLog, error) {
	return list[model.TaskLog](ctx, r.db)
}

func (r *taskLogRepo) Get(ctx context.Context, id int64) (*model.TaskLog, error) {
	return get[model.TaskLog](ctx, r.db, "Task log", id)
}

func (r *taskLogRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.TaskLog, error) {
	return update[model.TaskLog](ctx, r.db, "Task log", id, changes)
}

func (r *taskLogRepo) Delete(ctx context.Context, id int64) error {
	return remove[model.TaskLog](ctx, r.db, "Task log", id)
}

func (r *taskLogRepo) ListByTask(ctx context.Context, taskID int64) ([]*model.TaskLog, error) {
	logs := []*model.TaskLog{}
	return logs, r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("log_date ASC, start_time ASC, id ASC").
		Find(&logs).Error
}
