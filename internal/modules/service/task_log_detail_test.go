package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/pkg/apperr"
	"go.uber.org/zap"
)

func TestTaskLogDetailService_Create(t *testing.T) {
	r := &MockTaskLogDetailRepo{}
	pub := &MockPublisher{}
	r.On("Create", mock.Anything, mock.MatchedBy(func(d *model.TaskLogDetail) bool {
		return d.TaskLogID == 3 && *d.Content == "Reviewed PR"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.TaskLogDetail).ID = 7
	}).Return(nil)
	pub.On("PublishJSON", mock.Anything, "taskLogDetail.create", mock.MatchedBy(func(ev MutationEvent) bool {
		return ev.Entity == "taskLogDetail" && ev.EntityID == 7
	})).Return(nil)

	svc := NewTaskLogDetailService(r, NewNotifier(pub, zap.NewNop()))
	d, err := svc.Create(context.Background(), schema.CreateTaskLogDetailInput{TaskLogID: 3, Content: ptr("Reviewed PR")})

	require.NoError(t, err)
	assert.Equal(t, int64(7), d.ID)
	r.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestTaskLogDetailService_Create_MissingParent(t *testing.T) {
	r := &MockTaskLogDetailRepo{}
	r.On("Create", mock.Anything, mock.Anything).Return(apperr.Validation("referenced row does not exist", errors.New("FOREIGN KEY constraint failed")))

	svc := NewTaskLogDetailService(r, NewNotifier(nil, zap.NewNop()))
	_, err := svc.Create(context.Background(), schema.CreateTaskLogDetailInput{TaskLogID: 99})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTaskLogDetailService_Update(t *testing.T) {
	tests := []struct {
		name    string
		in      schema.UpdateTaskLogDetailInput
		changes map[string]any
	}{
		{
			name:    "content only",
			in:      schema.UpdateTaskLogDetailInput{ID: 2, Content: ptr("Edited")},
			changes: map[string]any{"content": "Edited"},
		},
		{
			name:    "move to another log",
			in:      schema.UpdateTaskLogDetailInput{ID: 2, TaskLogID: ptr(int64(5))},
			changes: map[string]any{"task_log_id": int64(5)},
		},
		{
			name:    "nothing supplied",
			in:      schema.UpdateTaskLogDetailInput{ID: 2},
			changes: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockTaskLogDetailRepo{}
			r.On("Update", mock.Anything, int64(2), tt.changes).Return(&model.TaskLogDetail{ID: 2}, nil)

			_, err := NewTaskLogDetailService(r, NewNotifier(nil, zap.NewNop())).Update(context.Background(), tt.in)

			require.NoError(t, err)
			r.AssertExpectations(t)
		})
	}
}

func TestTaskLogDetailService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		expected *schema.DeleteOutput
		kind     apperr.Kind
	}{
		{name: "deleted", expected: &schema.DeleteOutput{Success: true, ID: 2}},
		{name: "missing", repoErr: apperr.NotFound("TaskLogDetail", 2), kind: apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockTaskLogDetailRepo{}
			pub := &MockPublisher{}
			r.On("Delete", mock.Anything, int64(2)).Return(tt.repoErr)
			if tt.repoErr == nil {
				pub.On("PublishJSON", mock.Anything, "taskLogDetail.delete", mock.Anything).Return(nil)
			}

			out, err := NewTaskLogDetailService(r, NewNotifier(pub, zap.NewNop())).Delete(context.Background(), 2)

			if tt.repoErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.kind, apperr.KindOf(err))
				assert.Nil(t, out)
				pub.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
			pub.AssertExpectations(t)
		})
	}
}
