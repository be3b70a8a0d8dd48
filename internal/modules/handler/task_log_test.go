package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/pkg/apperr"
)

type MockTaskLogService struct {
	mock.Mock
}

func (m *MockTaskLogService) Create(ctx context.Context, in schema.CreateTaskLogInput) (*model.TaskLog, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogService) GetAll(ctx context.Context) ([]*model.TaskLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogService) GetByID(ctx context.Context, id int64) (*model.TaskLogWithRelations, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLogWithRelations), args.Error(1)
}

func (m *MockTaskLogService) GetByTaskID(ctx context.Context, taskID int64) ([]*model.TaskLog, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogService) Update(ctx context.Context, in schema.UpdateTaskLogInput) (*model.TaskLog, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogService) Delete(ctx context.Context, id int64) (*schema.DeleteOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.DeleteOutput), args.Error(1)
}

func TestTaskLogHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockTaskLogService)
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: `{"title":"Standup","taskId":2,"startTime":"2024-03-15T09:00:00"}`,
			setup: func(svc *MockTaskLogService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(in schema.CreateTaskLogInput) bool {
					return in.Title == "Standup" && *in.TaskID == 2 && *in.StartTime == "2024-03-15T09:00:00" && in.LogDate == nil
				})).Return(&model.TaskLog{ID: 1, Title: "Standup"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty title never reaches the service",
			body:           `{"title":""}`,
			setup:          func(svc *MockTaskLogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown task",
			body: `{"title":"Standup","taskId":99}`,
			setup: func(svc *MockTaskLogService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, apperr.Validation("referenced row does not exist", nil))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTaskLogService{}
			tt.setup(svc)
			engine := setupRPCEngine(NewTaskLogHandler(svc))

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, mutationRequest("taskLog.create", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestTaskLogHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		setup          func(*MockTaskLogService)
		expectedStatus int
	}{
		{
			name:  "log with relations",
			input: `{"id":1}`,
			setup: func(svc *MockTaskLogService) {
				svc.On("GetByID", mock.Anything, int64(1)).Return(&model.TaskLogWithRelations{
					TaskLog: model.TaskLog{ID: 1, Title: "Standup"},
					Details: []model.TaskLogDetailWithReferences{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "missing log",
			input: `{"id":7}`,
			setup: func(svc *MockTaskLogService) {
				svc.On("GetByID", mock.Anything, int64(7)).Return(nil, apperr.NotFound("TaskLog", 7))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "id missing",
			input:          `{}`,
			setup:          func(svc *MockTaskLogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTaskLogService{}
			tt.setup(svc)
			engine := setupRPCEngine(NewTaskLogHandler(svc))

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, queryRequest("taskLog.getById", tt.input))

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestTaskLogHandler_GetByTaskID(t *testing.T) {
	svc := &MockTaskLogService{}
	svc.On("GetByTaskID", mock.Anything, int64(2)).Return([]*model.TaskLog{}, nil)
	engine := setupRPCEngine(NewTaskLogHandler(svc))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, queryRequest("taskLog.getByTaskId", `{"0":{"id":2}}`))

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data []model.TaskLog `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestTaskLogHandler_Update(t *testing.T) {
	svc := &MockTaskLogService{}
	svc.On("Update", mock.Anything, mock.MatchedBy(func(in schema.UpdateTaskLogInput) bool {
		return in.ID == 3 && *in.LogDate == "" && in.StartTime == nil
	})).Return(&model.TaskLog{ID: 3}, nil)
	engine := setupRPCEngine(NewTaskLogHandler(svc))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, mutationRequest("taskLog.update", `{"id":3,"logDate":""}`))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestTaskLogHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockTaskLogService)
		expectedStatus int
	}{
		{
			name: "deleted",
			setup: func(svc *MockTaskLogService) {
				svc.On("Delete", mock.Anything, int64(5)).Return(&schema.DeleteOutput{Success: true, ID: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already gone",
			setup: func(svc *MockTaskLogService) {
				svc.On("Delete", mock.Anything, int64(5)).Return(nil, apperr.NotFound("TaskLog", 5))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTaskLogService{}
			tt.setup(svc)
			engine := setupRPCEngine(NewTaskLogHandler(svc))

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, mutationRequest("taskLog.delete", `{"id":5}`))

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
