package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/schema"
	"github.com/time-tracker/api/internal/pkg/apperr"
	"go.uber.org/zap"
)

func TestReferenceService_Create(t *testing.T) {
	r := &MockReferenceRepo{}
	r.On("Create", mock.Anything, mock.MatchedBy(func(ref *model.Reference) bool {
		return ref.TaskLogDetailID == 4 && ref.URL == "https://example.com/pr/1" && *ref.LinkType == "pr" && ref.Title == nil
	})).Return(nil)

	ref, err := NewReferenceService(r, NewNotifier(nil, zap.NewNop())).Create(context.Background(), schema.CreateReferenceInput{
		TaskLogDetailID: 4,
		URL:             "https://example.com/pr/1",
		LinkType:        ptr("pr"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pr/1", ref.URL)
	r.AssertExpectations(t)
}

func TestReferenceService_Update(t *testing.T) {
	tests := []struct {
		name    string
		in      schema.UpdateReferenceInput
		changes map[string]any
	}{
		{
			name:    "url and title",
			in:      schema.UpdateReferenceInput{ID: 8, URL: ptr("https://example.com/doc"), Title: ptr("Design doc")},
			changes: map[string]any{"url": "https://example.com/doc", "title": "Design doc"},
		},
		{
			name:    "reparent and retype",
			in:      schema.UpdateReferenceInput{ID: 8, TaskLogDetailID: ptr(int64(6)), LinkType: ptr("issue")},
			changes: map[string]any{"task_log_detail_id": int64(6), "link_type": "issue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockReferenceRepo{}
			pub := &MockPublisher{}
			r.On("Update", mock.Anything, int64(8), tt.changes).Return(&model.Reference{ID: 8}, nil)
			pub.On("PublishJSON", mock.Anything, "reference.update", mock.MatchedBy(func(ev MutationEvent) bool {
				return ev.EntityID == 8
			})).Return(nil)

			_, err := NewReferenceService(r, NewNotifier(pub, zap.NewNop())).Update(context.Background(), tt.in)

			require.NoError(t, err)
			r.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestReferenceService_Update_NotFound(t *testing.T) {
	r := &MockReferenceRepo{}
	r.On("Update", mock.Anything, int64(8), map[string]any{"title": "x"}).Return(nil, apperr.NotFound("Reference", 8))

	_, err := NewReferenceService(r, NewNotifier(nil, zap.NewNop())).Update(context.Background(), schema.UpdateReferenceInput{ID: 8, Title: ptr("x")})

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestReferenceService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		r := &MockReferenceRepo{}
		r.On("Delete", mock.Anything, int64(8)).Return(nil)

		out, err := NewReferenceService(r, NewNotifier(nil, zap.NewNop())).Delete(context.Background(), 8)

		require.NoError(t, err)
		assert.Equal(t, &schema.DeleteOutput{Success: true, ID: 8}, out)
	})

	t.Run("missing", func(t *testing.T) {
		r := &MockReferenceRepo{}
		r.On("Delete", mock.Anything, int64(8)).Return(apperr.NotFound("Reference", 8))

		out, err := NewReferenceService(r, NewNotifier(nil, zap.NewNop())).Delete(context.Background(), 8)

		assert.Nil(t, out)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestReferenceService_GetByTaskLogDetailID(t *testing.T) {
	r := &MockReferenceRepo{}
	r.On("ListByTaskLogDetail", mock.Anything, int64(4)).Return([]*model.Reference{{ID: 1, TaskLogDetailID: 4}}, nil)

	refs, err := NewReferenceService(r, NewNotifier(nil, zap.NewNop())).GetByTaskLogDetailID(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, refs, 1)
}
