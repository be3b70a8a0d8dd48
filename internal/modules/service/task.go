package service

import (
	"context"
	"fmt"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
	"github.com/time-tracker/api/internal/modules/schema"
	"go.uber.org/zap"
)

type TaskService interface {
	Create(ctx context.Context, in schema.CreateTaskInput) (*model.Task, error)
	GetAll(ctx context.Context) ([]*model.Task, error)
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	GetByProjectID(ctx context.Context, in schema.TasksByProjectInput) ([]*model.Task, error)
	Update(ctx context.Context, in schema.UpdateTaskInput) (*model.Task, error)
	UpdateOrder(ctx context.Context, in schema.UpdateTaskOrderInput) (*schema.UpdateTaskOrderOutput, error)
	Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error)
}

type taskService struct {
	r      repo.TaskRepo
	cache  SummaryCache
	events *Notifier
	log    *zap.Logger
}

func NewTaskService(r repo.TaskRepo, cache SummaryCache, events *Notifier, log *zap.Logger) TaskService {
	return &taskService{r: r, cache: cache, events: events, log: log}
}

func (s *taskService) Create(ctx context.Context, in schema.CreateTaskInput) (*model.Task, error) {
	t := &model.Task{
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      model.TaskStatusTodo,
		Priority:    model.TaskPriorityMedium,
		DueDate:     in.DueDate,
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Order != nil {
		t.Order = *in.Order
	}

	if err := s.r.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	forgetSummaries(ctx, s.cache, s.log, t.ProjectID)
	s.events.Mutated(ctx, "task.create", "task", t.ID)
	return t, nil
}

func (s *taskService) GetAll(ctx context.Context) ([]*model.Task, error) {
	return s.r.List(ctx)
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	return s.r.Get(ctx, id)
}

func (s *taskService) GetByProjectID(ctx context.Context, in schema.TasksByProjectInput) ([]*model.Task, error) {
	return s.r.ListByProject(ctx, in.ProjectID, in.Status, in.Priority)
}

func (s *taskService) Update(ctx context.Context, in schema.UpdateTaskInput) (*model.Task, error) {
	before, err := s.r.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if in.ProjectID != nil {
		changes["project_id"] = *in.ProjectID
	}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.Priority != nil {
		changes["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		changes["due_date"] = *in.DueDate
	}
	if in.Order != nil {
		changes["sort_order"] = *in.Order
	}

	t, err := s.r.Update(ctx, in.ID, changes)
	if err != nil {
		return nil, err
	}
	forgetSummaries(ctx, s.cache, s.log, before.ProjectID, t.ProjectID)
	s.events.Mutated(ctx, "task.update", "task", t.ID)
	return t, nil
}

// UpdateOrder applies every position in one transaction.
func (s *taskService) UpdateOrder(ctx context.Context, in schema.UpdateTaskOrderInput) (*schema.UpdateTaskOrderOutput, error) {
	orders := make([]repo.TaskOrder, len(in.Items))
	for i, it := range in.Items {
		orders[i] = repo.TaskOrder{ID: it.ID, Order: it.Order}
	}
	if err := s.r.UpdateOrder(ctx, orders); err != nil {
		return nil, err
	}
	for _, o := range orders {
		s.events.Mutated(ctx, "task.updateOrder", "task", o.ID)
	}
	return &schema.UpdateTaskOrderOutput{Success: true, Count: len(orders)}, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error) {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return nil, err
	}
	forgetSummaries(ctx, s.cache, s.log, t.ProjectID)
	s.events.Mutated(ctx, "task.delete", "task", id)
	return &schema.DeleteOutput{Success: true, ID: id}, nil
}
