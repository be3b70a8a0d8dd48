package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/pkg/apperr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TaskLogService interface {
	Create(ctx context.Context, in schema.CreateTaskLogInput) (*model.TaskLog, error)
	GetAll(ctx context.Context) ([]*model.TaskLog, error)
	GetByID(ctx context.Context, id int64) (*model.TaskLogWithRelations, error)
	GetByTaskID(ctx context.Context, taskID int64) ([]*model.TaskLog, error)
	Update(ctx context.Context, in schema.UpdateTaskLogInput) (*model.TaskLog, error)
	Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error)
}

type TaskLogServiceDeps struct {
	Logs       repo.TaskLogRepo
	Tasks      repo.TaskRepo
	Details    repo.TaskLogDetailRepo
	References repo.ReferenceRepo
	Cache      SummaryCache
	Events     *Notifier
	Log        *zap.Logger
}

type taskLogService struct {
	TaskLogServiceDeps
}

func NewTaskLogService(d TaskLogServiceDeps) TaskLogService {
	return &taskLogService{TaskLogServiceDeps: d}
}

func (s *taskLogService) Create(ctx context.Context, in schema.CreateTaskLogInput) (*model.TaskLog, error) {
	l := &model.TaskLog{
		TaskID:      in.TaskID,
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Timezone:    in.Timezone,
	}
	if !isBlank(in.LogDate) {
		l.LogDate = in.LogDate
	} else if !isBlank(in.StartTime) {
		l.LogDate = deriveLogDate(*in.StartTime)
	}

	if err := s.Logs.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create task log: %w", err)
	}
	forgetSummaries(ctx, s.Cache, s.Log, s.projectOf(ctx, l.TaskID))
	s.Events.Mutated(ctx, "taskLog.create", "taskLog", l.ID)
	return l, nil
}

func (s *taskLogService) GetAll(ctx context.Context) ([]*model.TaskLog, error) {
	return s.Logs.List(ctx)
}

// GetByID reads the log first, then its task and details concurrently, then
// the references of every detail in one query.
func (s *taskLogService) GetByID(ctx context.Context, id int64) (*model.TaskLogWithRelations, error) {
	l, err := s.Logs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		task    *model.Task
		details []*model.TaskLogDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	if l.TaskID != nil {
		g.Go(func() error {
			t, err := s.Tasks.Get(gctx, *l.TaskID)
			if errors.Is(err, apperr.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("load task: %w", err)
			}
			task = t
			return nil
		})
	}
	g.Go(func() error {
		d, err := s.Details.ListByTaskLog(gctx, id)
		if err != nil {
			return fmt.Errorf("load details: %w", err)
		}
		details = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(details))
	for i, d := range details {
		ids[i] = d.ID
	}
	refs, err := s.References.ListByTaskLogDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load references: %w", err)
	}
	byDetail := make(map[int64][]model.Reference, len(details))
	for _, r := range refs {
		byDetail[r.TaskLogDetailID] = append(byDetail[r.TaskLogDetailID], *r)
	}

	out := &model.TaskLogWithRelations{
		TaskLog: *l,
		Task:    task,
		Details: make([]model.TaskLogDetailWithReferences, len(details)),
	}
	for i, d := range details {
		attached := byDetail[d.ID]
		if attached == nil {
			attached = []model.Reference{}
		}
		out.Details[i] = model.TaskLogDetailWithReferences{TaskLogDetail: *d, References: attached}
	}
	return out, nil
}

func (s *taskLogService) GetByTaskID(ctx context.Context, taskID int64) ([]*model.TaskLog, error) {
	return s.Logs.ListByTask(ctx, taskID)
}

func (s *taskLogService) Update(ctx context.Context, in schema.UpdateTaskLogInput) (*model.TaskLog, error) {
	before, err := s.Logs.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if in.TaskID != nil {
		changes["task_id"] = *in.TaskID
	}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.StartTime != nil {
		changes["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		changes["end_time"] = *in.EndTime
	}
	if in.Timezone != nil {
		changes["timezone"] = *in.Timezone
	}
	// A blank logDate never clears the stored one.
	if !isBlank(in.LogDate) {
		changes["log_date"] = *in.LogDate
	} else if !isBlank(in.StartTime) {
		if d := deriveLogDate(*in.StartTime); d != nil {
			changes["log_date"] = *d
		}
	}

	l, err := s.Logs.Update(ctx, in.ID, changes)
	if err != nil {
		return nil, err
	}
	forgetSummaries(ctx, s.Cache, s.Log, s.projectOf(ctx, before.TaskID), s.projectOf(ctx, l.TaskID))
	s.Events.Mutated(ctx, "taskLog.update", "taskLog", l.ID)
	return l, nil
}

func (s *taskLogService) Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error) {
	l, err := s.Logs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Logs.Delete(ctx, id); err != nil {
		return nil, err
	}
	forgetSummaries(ctx, s.Cache, s.Log, s.projectOf(ctx, l.TaskID))
	s.Events.Mutated(ctx, "taskLog.delete", "taskLog", id)
	return &schema.DeleteOutput{Success: true, ID: id}, nil
}

// projectOf resolves the project owning taskID, or nil when unknown.
func (s *taskLogService) projectOf(ctx context.Context, taskID *int64) *int64 {
	if taskID == nil {
		return nil
	}
	t, err := s.Tasks.Get(ctx, *taskID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			s.Log.Sugar().Warnw("resolve project of task failed", "task_id", *taskID, "err", err)
		}
		return nil
	}
	return t.ProjectID
}

var startTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// deriveLogDate returns the calendar date of startTime as YYYY-MM-DD.
// Values with an offset are converted to UTC first; zone-less values keep
// their own date whatever the server's zone is. An unparseable value yields
// nil so the log is stored without a date.
func deriveLogDate(startTime string) *string {
	v := strings.TrimSpace(startTime)
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		d := t.UTC().Format(time.DateOnly)
		return &d
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			d := t.Format(time.DateOnly)
			return &d
		}
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
