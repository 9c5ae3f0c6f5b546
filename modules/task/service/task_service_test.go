package service

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"testing"
	"time"

	coreEntity "team-scheduler/core/entity"
	"team-scheduler/core/errors"
	"team-scheduler/core/testkit"
	"team-scheduler/core/utils"
	"team-scheduler/core/validation"
	"team-scheduler/modules/task/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*TaskService, *testkit.TaskStore) {
	t.Helper()
	store := testkit.NewTaskStore()
	return NewTaskService(store, validation.New()), store
}

func decode(t *testing.T, body string) *dto.CreateTaskRequest {
	t.Helper()
	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestCreate_StoresPendingTask(t *testing.T) {
	svc, store := newService(t)

	resp, appErr := svc.Create(context.Background(), utils.Principal{ID: 3}, decode(t, `{
		"title": " Send quote ",
		"assignedToId": "7",
		"startAt": "2025-03-14T09:00:00Z",
		"endAt": "2025-03-14T11:00:00Z",
		"deadlineAt": "2025-03-20T17:00:00Z"
	}`))
	require.Nil(t, appErr)

	assert.Equal(t, "Send quote", resp.Title)
	assert.Equal(t, int64(7), resp.AssignedToID)
	assert.Equal(t, int64(3), resp.CreatedByID)
	assert.Equal(t, string(coreEntity.StatusPending), resp.Status)
	require.NotNil(t, resp.DeadlineAt)
	assert.Equal(t, time.Date(2025, 3, 20, 17, 0, 0, 0, time.UTC), *resp.DeadlineAt)

	stored, err := store.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreate_UnparseableTimestampsDropped(t *testing.T) {
	svc, _ := newService(t)

	resp, appErr := svc.Create(context.Background(), utils.Principal{ID: 3}, decode(t, `{
		"title": "Call back",
		"assignedToId": 7,
		"startAt": "soon",
		"endAt": "2025-03-14T11:00:00Z",
		"deadlineAt": ""
	}`))
	require.Nil(t, appErr)
	assert.Nil(t, resp.StartAt)
	assert.NotNil(t, resp.EndAt)
	assert.Nil(t, resp.DeadlineAt)
}

func TestCreate_NoTimestamps(t *testing.T) {
	svc, _ := newService(t)

	resp, appErr := svc.Create(context.Background(), utils.Principal{ID: 3}, decode(t, `{"title":"Someday","assignedToId":7}`))
	require.Nil(t, appErr)
	assert.Nil(t, resp.StartAt)
	assert.Nil(t, resp.EndAt)
	assert.Nil(t, resp.DeadlineAt)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing title", `{"assignedToId":7}`, "title"},
		{"blank title", `{"title":"  ","assignedToId":7}`, "title"},
		{"missing assignee", `{"title":"x"}`, "assignedToId"},
		{"non numeric assignee", `{"title":"x","assignedToId":"bob"}`, "assignedToId"},
		{"negative assignee", `{"title":"x","assignedToId":-2}`, "assignedToId"},
		{"end before start", `{"title":"x","assignedToId":7,"startAt":"2025-03-14T11:00:00Z","endAt":"2025-03-14T09:00:00Z"}`, "endAt"},
		{"end equals start", `{"title":"x","assignedToId":7,"startAt":"2025-03-14T11:00:00Z","endAt":"2025-03-14T11:00:00Z"}`, "endAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService(t)

			resp, appErr := svc.Create(context.Background(), utils.Principal{ID: 3}, decode(t, tt.body))
			assert.Nil(t, resp)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
			fields, ok := appErr.Details.([]validation.FieldError)
			require.True(t, ok)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.field, fields[0].Field)
			assert.Zero(t, store.Calls)
		})
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	svc, store := newService(t)
	store.Err = stdErrors.New("timeout")

	_, appErr := svc.Create(context.Background(), utils.Principal{ID: 3}, decode(t, `{"title":"x","assignedToId":7}`))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCreateFailed, appErr.Code)
}
