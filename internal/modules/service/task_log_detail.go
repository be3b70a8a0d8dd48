package service

import (
	"context"
	"fmt"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
	"github.com/time-tracker/api/internal/modules/schema"
)

type TaskLogDetailService interface {
	Create(ctx context.Context, in schema.CreateTaskLogDetailInput) (*model.TaskLogDetail, error)
	GetAll(ctx context.Context) ([]*model.TaskLogDetail, error)
	GetByID(ctx context.Context, id int64) (*model.TaskLogDetail, error)
	GetByTaskLogID(ctx context.Context, taskLogID int64) ([]*model.TaskLogDetail, error)
	Update(ctx context.Context, in schema.UpdateTaskLogDetailInput) (*model.TaskLogDetail, error)
	Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error)
}

type taskLogDetailService struct {
	r      repo.TaskLogDetailRepo
	events *Notifier
}

func NewTaskLogDetailService(r repo.TaskLogDetailRepo, events *Notifier) TaskLogDetailService {
	return &taskLogDetailService{r: r, events: events}
}

func (s *taskLogDetailService) Create(ctx context.Context, in schema.CreateTaskLogDetailInput) (*model.TaskLogDetail, error) {
	d := &model.TaskLogDetail{TaskLogID: in.TaskLogID, Content: in.Content}
	if err := s.r.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create task log detail: %w", err)
	}
	s.events.Mutated(ctx, "taskLogDetail.create", "taskLogDetail", d.ID)
	return d, nil
}

func (s *taskLogDetailService) GetAll(ctx context.Context) ([]*model.TaskLogDetail, error) {
	return s.r.List(ctx)
}

func (s *taskLogDetailService) GetByID(ctx context.Context, id int64) (*model.TaskLogDetail, error) {
	return s.r.Get(ctx, id)
}

func (s *taskLogDetailService) GetByTaskLogID(ctx context.Context, taskLogID int64) ([]*model.TaskLogDetail, error) {
	return s.r.ListByTaskLog(ctx, taskLogID)
}

func (s *taskLogDetailService) Update(ctx context.Context, in schema.UpdateTaskLogDetailInput) (*model.TaskLogDetail, error) {
	changes := map[string]any{}
	if in.TaskLogID != nil {
		changes["task_log_id"] = *in.TaskLogID
	}
	if in.Content != nil {
		changes["content"] = *in.Content
	}
	d, err := s.r.Update(ctx, in.ID, changes)
	if err != nil {
		return nil, err
	}
	s.events.Mutated(ctx, "taskLogDetail.update", "taskLogDetail", d.ID)
	return d, nil
}

func (s *taskLogDetailService) Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error) {
	if err := s.r.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.events.Mutated(ctx, "taskLogDetail.delete", "taskLogDetail", id)
	return &schema.DeleteOutput{Success: true, ID: id}, nil
}
