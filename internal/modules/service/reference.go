package service

import (
	"context"
	"fmt"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
	"github.com/time-tracker/api/internal/modules/schema"
)

type ReferenceService interface {
	Create(ctx context.Context, in schema.CreateReferenceInput) (*model.Reference, error)
	GetAll(ctx context.Context) ([]*model.Reference, error)
	GetByID(ctx context.Context, id int64) (*model.Reference, error)
	GetByTaskLogDetailID(ctx context.Context, detailID int64) ([]*model.Reference, error)
	Update(ctx context.Context, in schema.UpdateReferenceInput) (*model.Reference, error)
	Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error)
}

type referenceService struct {
	r      repo.ReferenceRepo
	events *Notifier
}

func NewReferenceService(r repo.ReferenceRepo, events *Notifier) ReferenceService {
	return &referenceService{r: r, events: events}
}

func (s *referenceService) Create(ctx context.Context, in schema.CreateReferenceInput) (*model.Reference, error) {
	ref := &model.Reference{
		TaskLogDetailID: in.TaskLogDetailID,
		URL:             in.URL,
		Title:           in.Title,
		LinkType:        in.LinkType,
	}
	if err := s.r.Create(ctx, ref); err != nil {
		return nil, fmt.Errorf("create reference: %w", err)
	}
	s.events.Mutated(ctx, "reference.create", "reference", ref.ID)
	return ref, nil
}

func (s *referenceService) GetAll(ctx context.Context) ([]*model.Reference, error) {
	return s.r.List(ctx)
}

func (s *referenceService) GetByID(ctx context.Context, id int64) (*model.Reference, error) {
	return s.r.Get(ctx, id)
}

func (s *referenceService) GetByTaskLogDetailID(ctx context.Context, detailID int64) ([]*model.Reference, error) {
	return s.r.ListByTaskLogDetail(ctx, detailID)
}

func (s *referenceService) Update(ctx context.Context, in schema.UpdateReferenceInput) (*model.Reference, error) {
	changes := map[string]any{}
	if in.TaskLogDetailID != nil {
		changes["task_log_detail_id"] = *in.TaskLogDetailID
	}
	if in.URL != nil {
		changes["url"] = *in.URL
	}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.LinkType != nil {
		changes["link_type"] = *in.LinkType
	}
	ref, err := s.r.Update(ctx, in.ID, changes)
	if err != nil {
		return nil, err
	}
	s.events.Mutated(ctx, "reference.update", "reference", ref.ID)
	return ref, nil
}

func (s *referenceService) Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error) {
	if err := s.r.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.events.Mutated(ctx, "reference.delete", "reference", id)
	return &schema.DeleteOutput{Success: true, ID: id}, nil
}
