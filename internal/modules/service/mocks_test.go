package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) List(ctx context.Context) ([]*model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Get(ctx context.Context, id int64) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.Project, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) Stats(ctx context.Context, id int64, weekStart string) (*model.ProjectStats, error) {
	args := m.Called(ctx, id, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectStats), args.Error(1)
}

// MockTaskRepo is a mock implementation of repo.TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) List(ctx context.Context) ([]*model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Get(ctx context.Context, id int64) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.Task, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepo) ListByProject(ctx context.Context, projectID int64, status *model.TaskStatus, priority *model.TaskPriority) ([]*model.Task, error) {
	args := m.Called(ctx, projectID, status, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepo) UpdateOrder(ctx context.Context, orders []repo.TaskOrder) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

// MockTaskLogRepo is a mock implementation of repo.TaskLogRepo
type MockTaskLogRepo struct {
	mock.Mock
}

func (m *MockTaskLogRepo) Create(ctx context.Context, l *model.TaskLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockTaskLogRepo) List(ctx context.Context) ([]*model.TaskLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogRepo) Get(ctx context.Context, id int64) (*model.TaskLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.TaskLog, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskLogRepo) ListByTask(ctx context.Context, taskID int64) ([]*model.TaskLog, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLog), args.Error(1)
}

// MockTaskLogDetailRepo is a mock implementation of repo.TaskLogDetailRepo
type MockTaskLogDetailRepo struct {
	mock.Mock
}

func (m *MockTaskLogDetailRepo) Create(ctx context.Context, d *model.TaskLogDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockTaskLogDetailRepo) List(ctx context.Context) ([]*model.TaskLogDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLogDetail), args.Error(1)
}

func (m *MockTaskLogDetailRepo) Get(ctx context.Context, id int64) (*model.TaskLogDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLogDetail), args.Error(1)
}

func (m *MockTaskLogDetailRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.TaskLogDetail, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLogDetail), args.Error(1)
}

func (m *MockTaskLogDetailRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskLogDetailRepo) ListByTaskLog(ctx context.Context, taskLogID int64) ([]*model.TaskLogDetail, error) {
	args := m.Called(ctx, taskLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLogDetail), args.Error(1)
}

// MockReferenceRepo is a mock implementation of repo.ReferenceRepo
type MockReferenceRepo struct {
	mock.Mock
}

func (m *MockReferenceRepo) Create(ctx context.Context, ref *model.Reference) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockReferenceRepo) List(ctx context.Context) ([]*model.Reference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Reference), args.Error(1)
}

func (m *MockReferenceRepo) Get(ctx context.Context, id int64) (*model.Reference, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reference), args.Error(1)
}

func (m *MockReferenceRepo) Update(ctx context.Context, id int64, changes map[string]any) (*model.Reference, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reference), args.Error(1)
}

func (m *MockReferenceRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReferenceRepo) ListByTaskLogDetail(ctx context.Context, detailID int64) ([]*model.Reference, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Reference), args.Error(1)
}

func (m *MockReferenceRepo) ListByTaskLogDetails(ctx context.Context, detailIDs []int64) ([]*model.Reference, error) {
	args := m.Called(ctx, detailIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Reference), args.Error(1)
}

// MockSummaryCache is a mock implementation of SummaryCache
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockSummaryCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSummaryCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	args := m.Called(ctx, routingKey, v)
	return args.Error(0)
}

func ptr[T any](v T) *T { return &v }
