package repo

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"gorm.io/gorm"
)

type TaskLogDetailRepo interface {
	Create(ctx context.Context, d *model.TaskLogDetail) error
	List(ctx context.Context) ([]*model.TaskLogDetail, error)
	Get(ctx context.Context, id int64) (*model.TaskLogDetail, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*model.TaskLogDetail, error)
	Delete(ctx context.Context, id int64) error
	ListByTaskLog(ctx context.Context, taskLogID int64) ([]*model.TaskLogDetail, error)
}

type taskLogDetailRepo struct{ db *gorm.DB }

func NewTaskLogDetailRepo(db *gorm.DB) TaskLogDetailRepo {
	return &taskLogDetailRepo{db: db}
}

func (r *taskLogDetailRepo) Create(ctx context.Context, d *model.TaskLogDetail) error {
	return create(ctx, r.db, d)
}

func (r *taskLogDetailRepo) List(ctx context.Context) ([]*model.TaskLogDetail, error) {
	return list[model.TaskLogDetail](ctx, r.db)
}

func (r *taskLogDetailRepo) Get(ctx context.Context, id int64) (*model.TaskLogDetail, error) {
	return get[model.TaskLogDetail](ctx, r.db, "Task log detail", id)
}

func (r *taskLogDetailRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.TaskLogDetail, error) {
	return update[model.TaskLogDetail](ctx, r.db, "Task log detail", id, changes)
}

func (r *taskLogDetailRepo) Delete(ctx context.Context, id int64) error {
	return remove[model.TaskLogDetail](ctx, r.db, "Task log detail", id)
}

func (r *taskLogDetailRepo) ListByTaskLog(ctx context.Context, taskLogID int64) ([]*model.TaskLogDetail, error) {
	details := []*model.TaskLogDetail{}
	return details, r.db.WithContext(ctx).Where("task_log_id = ?", taskLogID).Order("id ASC").Find(&details).Error
}
