package service

import (
	"context"
	"fmt"
	"time"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
	"github.com/time-tracker/api/internal/modules/schema"
	"go.uber.org/zap"
)

type ProjectService interface {
	Create(ctx context.Context, in schema.CreateProjectInput) (*model.Project, error)
	GetAll(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	GetSummary(ctx context.Context, id int64) (*model.ProjectSummary, error)
	Update(ctx context.Context, in schema.UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error)
}

type projectService struct {
	r      repo.ProjectRepo
	cache  SummaryCache
	events *Notifier
	log    *zap.Logger
	now    func() time.Time
}

func NewProjectService(r repo.ProjectRepo, cache SummaryCache, events *Notifier, log *zap.Logger) ProjectService {
	return &projectService{r: r, cache: cache, events: events, log: log, now: time.Now}
}

func (s *projectService) Create(ctx context.Context, in schema.CreateProjectInput) (*model.Project, error) {
	p := &model.Project{
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.events.Mutated(ctx, "project.create", "project", p.ID)
	return p, nil
}

func (s *projectService) GetAll(ctx context.Context) ([]*model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	return s.r.Get(ctx, id)
}

// GetSummary returns the project with task counts, log activity of the last
// seven days and the most recent log timestamp.
func (s *projectService) GetSummary(ctx context.Context, id int64) (*model.ProjectSummary, error) {
	key := summaryKey(id)

	var cached model.ProjectSummary
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Sugar().Warnw("read project summary cache failed", "project_id", id, "err", err)
	} else if ok {
		return &cached, nil
	}

	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	weekStart := s.now().UTC().AddDate(0, 0, -7).Format(time.DateOnly)
	stats, err := s.r.Stats(ctx, id, weekStart)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}

	out := &model.ProjectSummary{Project: *p, Stats: *stats}
	if err := s.cache.Set(ctx, key, out); err != nil {
		s.log.Sugar().Warnw("write project summary cache failed", "project_id", id, "err", err)
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, in schema.UpdateProjectInput) (*model.Project, error) {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Color != nil {
		changes["color"] = *in.Color
	}

	p, err := s.r.Update(ctx, in.ID, changes)
	if err != nil {
		return nil, err
	}
	forgetSummaries(ctx, s.cache, s.log, &p.ID)
	s.events.Mutated(ctx, "project.update", "project", p.ID)
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error) {
	if err := s.r.Delete(ctx, id); err != nil {
		return nil, err
	}
	forgetSummaries(ctx, s.cache, s.log, &id)
	s.events.Mutated(ctx, "project.delete", "project", id)
	return &schema.DeleteOutput{Success: true, ID: id}, nil
}
