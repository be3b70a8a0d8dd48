package repo

import (
	"context"
	"fmt"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/pkg/apperr"
	"gorm.io/gorm"
)

// TaskOrder is one entry of a manual re-sort.
type TaskOrder struct {
	ID    int64
	Order int
}

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	List(ctx context.Context) ([]*model.Task, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*model.Task, error)
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64, status *model.TaskStatus, priority *model.TaskPriority) ([]*model.Task, error)
	UpdateOrder(ctx context.Context, orders []TaskOrder) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return create(ctx, r.db, t)
}

func (r *taskRepo) List(ctx context.Context) ([]*model.Task, error) {
	return list[model.Task](ctx, r.db)
}

func (r *taskRepo) Get(ctx context.Context, id int64) (*model.Task, error) {
	return get[model.Task](ctx, r.db, "Task", id)
}

func (r *taskRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.Task, error) {
	return update[model.Task](ctx, r.db, "Task", id, changes)
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	return remove[model.Task](ctx, r.db, "Task", id)
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID int64, status *model.TaskStatus, priority *model.TaskPriority) ([]*model.Task, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if priority != nil {
		q = q.Where("priority = ?", *priority)
	}

	tasks := []*model.Task{}
	return tasks, q.Order("sort_order ASC, id ASC").Find(&tasks).Error
}

// UpdateOrder writes every position or none of them.
func (r *taskRepo) UpdateOrder(ctx context.Context, orders []TaskOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			res := tx.Model(&model.Task{}).Where("id = ?", o.ID).Update("sort_order", o.Order)
			if res.Error != nil {
				return fmt.Errorf("update order of task %d: %w", o.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("Task", o.ID)
			}
		}
		return nil
	})
}
