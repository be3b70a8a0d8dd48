package schema

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/pkg/apperr"
)

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		errorMsg string
	}{
		{
			name: "valid project",
			in:   &CreateProjectInput{Name: "Website"},
		},
		{
			name:     "empty project name",
			in:       &CreateProjectInput{Name: ""},
			errorMsg: "name is required",
		},
		{
			name:     "update with empty name",
			in:       &UpdateProjectInput{ID: 1, Name: ptr("")},
			errorMsg: "name must be at least 1 characters",
		},
		{
			name: "update without name keeps it",
			in:   &UpdateProjectInput{ID: 1, Description: ptr("")},
		},
		{
			name:     "missing id",
			in:       &IDInput{},
			errorMsg: "id is required",
		},
		{
			name:     "unknown status",
			in:       &CreateTaskInput{Title: "Write tests", Status: ptr(model.TaskStatus("blocked"))},
			errorMsg: "status must be one of [todo, in_progress, done]",
		},
		{
			name:     "unknown priority on filter",
			in:       &TasksByProjectInput{ProjectID: 2, Priority: ptr(model.TaskPriority("urgent"))},
			errorMsg: "priority must be one of [low, medium, high]",
		},
		{
			name: "valid task",
			in:   &CreateTaskInput{Title: "Write tests", Status: ptr(model.TaskStatusInProgress), Priority: ptr(model.TaskPriorityHigh)},
		},
		{
			name:     "malformed reference url",
			in:       &CreateReferenceInput{TaskLogDetailID: 1, URL: "not a url"},
			errorMsg: "url must be a valid URL",
		},
		{
			name:     "malformed reference url on update",
			in:       &UpdateReferenceInput{ID: 1, URL: ptr("::")},
			errorMsg: "url must be a valid URL",
		},
		{
			name: "valid reference",
			in:   &CreateReferenceInput{TaskLogDetailID: 1, URL: "https://example.com/pr/12"},
		},
		{
			name:     "bad calendar bound",
			in:       &CalendarRangeInput{From: "2024-03-01", To: "March 31"},
			errorMsg: "to must be a date formatted as 2006-01-02",
		},
		{
			name:     "empty order list",
			in:       &UpdateTaskOrderInput{},
			errorMsg: "items is required",
		},
		{
			name:     "order item without id",
			in:       &UpdateTaskOrderInput{Items: []TaskOrderItem{{ID: 1, Order: 2}, {Order: 3}}},
			errorMsg: "items[1].id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestUpdateTaskOrderInput_UnmarshalJSON(t *testing.T) {
	var bare UpdateTaskOrderInput
	require.NoError(t, sonic.Unmarshal([]byte(`[{"id":1,"order":5},{"id":2,"order":3}]`), &bare))
	assert.Equal(t, []TaskOrderItem{{ID: 1, Order: 5}, {ID: 2, Order: 3}}, bare.Items)

	var wrapped UpdateTaskOrderInput
	require.NoError(t, sonic.Unmarshal([]byte(`{"items":[{"id":4,"order":0}]}`), &wrapped))
	assert.Equal(t, []TaskOrderItem{{ID: 4, Order: 0}}, wrapped.Items)
}
