package service

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	coreEntity "team-scheduler/core/entity"
	"team-scheduler/core/errors"
	"team-scheduler/core/testkit"
	"team-scheduler/core/utils"
	"team-scheduler/core/validation"
	"team-scheduler/modules/approval/dto"
	appointmentEntity "team-scheduler/modules/appointment/entity"
	taskEntity "team-scheduler/modules/task/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invalidation struct {
	MemberID int64
	Month    string
}

type recordingInvalidator struct {
	calls []invalidation
}

func (r *recordingInvalidator) InvalidateMonth(ctx context.Context, memberID int64, at time.Time) {
	r.calls = append(r.calls, invalidation{MemberID: memberID, Month: at.Format("2006-01")})
}

// lostRace reports the record as pending on read but loses the conditional
// update, as when a concurrent request decides it first.
type lostRace struct {
	*testkit.AppointmentStore
}

func (lostRace) UpdateStatus(context.Context, string, coreEntity.ApprovalStatus, int64, time.Time) (*appointmentEntity.Appointment, error) {
	return nil, nil
}

type fixture struct {
	svc          *ApprovalService
	appointments *testkit.AppointmentStore
	tasks        *testkit.TaskStore
	invalidator  *recordingInvalidator
}

func at(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		appointments: testkit.NewAppointmentStore(),
		tasks:        testkit.NewTaskStore(),
		invalidator:  &recordingInvalidator{},
	}
	f.svc = NewApprovalService(f.appointments, f.tasks, f.invalidator, validation.New())

	appointment := appointmentEntity.Appointment{
		Subject:     "Survey",
		StartAt:     at("2025-03-14T09:00:00Z"),
		EndAt:       at("2025-03-14T10:00:00Z"),
		Status:      coreEntity.StatusPending,
		CreatedByID: 3,
		MemberID:    7,
	}
	appointment.ID = "apt-1"
	f.appointments.Put(appointment)

	task := taskEntity.Task{
		Title:        "Quote",
		StartAt:      ptr(at("2025-02-27T09:00:00Z")),
		DeadlineAt:   ptr(at("2025-03-03T17:00:00Z")),
		Status:       coreEntity.StatusPending,
		CreatedByID:  3,
		AssignedToID: 7,
	}
	task.ID = "task-1"
	f.tasks.Put(task)
	return f
}

var owner = utils.Principal{ID: 7}

func TestTransition_ApproveAppointment(t *testing.T) {
	f := newFixture(t)
	before := time.Now().UTC()

	resp, appErr := f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityAppointment, ID: "apt-1", Status: "approved",
	})
	require.Nil(t, appErr)
	require.NotNil(t, resp.Appointment)
	assert.Nil(t, resp.Task)

	assert.Equal(t, string(coreEntity.StatusApproved), resp.Appointment.Status)
	require.NotNil(t, resp.Appointment.ApprovedByID)
	assert.Equal(t, int64(7), *resp.Appointment.ApprovedByID)
	require.NotNil(t, resp.Appointment.ApprovedAt)
	assert.False(t, resp.Appointment.ApprovedAt.Before(before))

	stored, _ := f.appointments.GetByID(context.Background(), "apt-1")
	assert.Equal(t, coreEntity.StatusApproved, stored.Status)
	assert.Equal(t, []invalidation{{MemberID: 7, Month: "2025-03"}}, f.invalidator.calls)
}

func TestTransition_DeclineTaskInvalidatesBothAnchorMonths(t *testing.T) {
	f := newFixture(t)

	resp, appErr := f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityTask, ID: " task-1 ", Status: "declined",
	})
	require.Nil(t, appErr)
	require.NotNil(t, resp.Task)
	assert.Nil(t, resp.Appointment)
	assert.Equal(t, string(coreEntity.StatusDeclined), resp.Task.Status)
	require.NotNil(t, resp.Task.ApprovedByID)
	assert.Equal(t, int64(7), *resp.Task.ApprovedByID)

	assert.Equal(t, []invalidation{
		{MemberID: 7, Month: "2025-02"},
		{MemberID: 7, Month: "2025-03"},
	}, f.invalidator.calls)
}

func TestTransition_TaskSameMonthInvalidatedOnce(t *testing.T) {
	f := newFixture(t)
	task := taskEntity.Task{
		Title:        "Call",
		StartAt:      ptr(at("2025-03-02T09:00:00Z")),
		DeadlineAt:   ptr(at("2025-03-28T09:00:00Z")),
		Status:       coreEntity.StatusPending,
		AssignedToID: 7,
	}
	task.ID = "task-2"
	f.tasks.Put(task)

	_, appErr := f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityTask, ID: "task-2", Status: "approved",
	})
	require.Nil(t, appErr)
	assert.Len(t, f.invalidator.calls, 1)
}

func TestTransition_UnknownAndForeignLookTheSame(t *testing.T) {
	f := newFixture(t)

	_, missing := f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityAppointment, ID: "does-not-exist", Status: "approved",
	})
	_, foreign := f.svc.Transition(context.Background(), utils.Principal{ID: 3}, &dto.TransitionRequest{
		Type: dto.EntityAppointment, ID: "apt-1", Status: "approved",
	})

	require.NotNil(t, missing)
	require.NotNil(t, foreign)
	assert.Equal(t, errors.ErrForbidden, missing.Code)
	assert.Equal(t, missing.Code, foreign.Code)
	assert.Equal(t, missing.Message, foreign.Message)

	stored, _ := f.appointments.GetByID(context.Background(), "apt-1")
	assert.Equal(t, coreEntity.StatusPending, stored.Status)
	assert.Empty(t, f.invalidator.calls)
}

func TestTransition_CreatorCannotDecideTask(t *testing.T) {
	f := newFixture(t)

	_, appErr := f.svc.Transition(context.Background(), utils.Principal{ID: 3}, &dto.TransitionRequest{
		Type: dto.EntityTask, ID: "task-1", Status: "approved",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestTransition_DecidedRecordIsFinal(t *testing.T) {
	f := newFixture(t)
	req := &dto.TransitionRequest{Type: dto.EntityAppointment, ID: "apt-1", Status: "approved"}

	_, appErr := f.svc.Transition(context.Background(), owner, req)
	require.Nil(t, appErr)

	_, appErr = f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityAppointment, ID: "apt-1", Status: "declined",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidStateTransition, appErr.Code)

	stored, _ := f.appointments.GetByID(context.Background(), "apt-1")
	assert.Equal(t, coreEntity.StatusApproved, stored.Status)
	assert.Len(t, f.invalidator.calls, 1)
}

func TestTransition_ForeignDecidedRecordIsForbidden(t *testing.T) {
	f := newFixture(t)
	_, appErr := f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityTask, ID: "task-1", Status: "approved",
	})
	require.Nil(t, appErr)

	_, appErr = f.svc.Transition(context.Background(), utils.Principal{ID: 99}, &dto.TransitionRequest{
		Type: dto.EntityTask, ID: "task-1", Status: "declined",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestTransition_LostRaceIsConflict(t *testing.T) {
	f := newFixture(t)
	svc := NewApprovalService(lostRace{f.appointments}, f.tasks, f.invalidator, validation.New())

	_, appErr := svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityAppointment, ID: "apt-1", Status: "approved",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidStateTransition, appErr.Code)
	assert.Empty(t, f.invalidator.calls)
}

func TestTransition_RejectsInvalidRequest(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.TransitionRequest
		field string
	}{
		{"unknown type", dto.TransitionRequest{Type: "meeting", ID: "apt-1", Status: "approved"}, "type"},
		{"missing id", dto.TransitionRequest{Type: "task", ID: "  ", Status: "approved"}, "id"},
		{"pending is not a decision", dto.TransitionRequest{Type: "task", ID: "task-1", Status: "pending"}, "status"},
		{"wrong case", dto.TransitionRequest{Type: "appointment", ID: "apt-1", Status: "Approved"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := tt.req

			_, appErr := f.svc.Transition(context.Background(), owner, &req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
			fields := appErr.Details.([]validation.FieldError)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.field, fields[0].Field)
			assert.Zero(t, f.appointments.Calls)
			assert.Zero(t, f.tasks.Calls)
		})
	}
}

func TestTransition_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.tasks.Err = stdErrors.New("connection refused")

	_, appErr := f.svc.Transition(context.Background(), owner, &dto.TransitionRequest{
		Type: dto.EntityTask, ID: "task-1", Status: "approved",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrGetFailed, appErr.Code)
}
