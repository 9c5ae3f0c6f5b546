// Package testkit holds in-memory stand-ins for the store, cache, queue and
// object storage, shared by service and controller tests.
package testkit

import (
	"context"
	"sort"
	"sync"
	"time"

	coreEntity "team-scheduler/core/entity"
	appointmentEntity "team-scheduler/modules/appointment/entity"
	memberEntity "team-scheduler/modules/member/entity"
	taskEntity "team-scheduler/modules/task/entity"
)

// AppointmentStore applies the same predicates and ordering as the SQL
// repository.
type AppointmentStore struct {
	mu    sync.Mutex
	rows  map[string]appointmentEntity.Appointment
	Err   error
	Calls int
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{rows: map[string]appointmentEntity.Appointment{}}
}

func (s *AppointmentStore) Put(a appointmentEntity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[a.ID] = a
}

func (s *AppointmentStore) Create(ctx context.Context, a *appointmentEntity.Appointment) (*appointmentEntity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	s.rows[a.ID] = *a
	out := *a
	return &out, nil
}

func (s *AppointmentStore) GetByID(ctx context.Context, id string) (*appointmentEntity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	a, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *AppointmentStore) FindMany(ctx context.Context, filter appointmentEntity.AppointmentFilter) ([]appointmentEntity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := []appointmentEntity.Appointment{}
	for _, a := range s.rows {
		if filter.Matches(&a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return appointmentEntity.Less(&out[i], &out[j]) })
	return out, nil
}

func (s *AppointmentStore) UpdateStatus(ctx context.Context, id string, status coreEntity.ApprovalStatus, approvedByID int64, approvedAt time.Time) (*appointmentEntity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	a, ok := s.rows[id]
	if !ok || a.Status != coreEntity.StatusPending {
		return nil, nil
	}
	a.Status = status
	a.ApprovedByID = &approvedByID
	a.ApprovedAt = &approvedAt
	a.UpdatedAt = approvedAt
	s.rows[id] = a
	return &a, nil
}

type TaskStore struct {
	mu    sync.Mutex
	rows  map[string]taskEntity.Task
	Err   error
	Calls int
}

func NewTaskStore() *TaskStore {
	return &TaskStore{rows: map[string]taskEntity.Task{}}
}

func (s *TaskStore) Put(t taskEntity.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[t.ID] = t
}

func (s *TaskStore) Create(ctx context.Context, t *taskEntity.Task) (*taskEntity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	s.rows[t.ID] = *t
	out := *t
	return &out, nil
}

func (s *TaskStore) GetByID(ctx context.Context, id string) (*taskEntity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	t, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *TaskStore) FindMany(ctx context.Context, filter taskEntity.TaskFilter) ([]taskEntity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := []taskEntity.Task{}
	for _, t := range s.rows {
		if filter.Matches(&t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return taskEntity.Less(&out[i], &out[j]) })
	return out, nil
}

func (s *TaskStore) UpdateStatus(ctx context.Context, id string, status coreEntity.ApprovalStatus, approvedByID int64, approvedAt time.Time) (*taskEntity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	t, ok := s.rows[id]
	if !ok || t.Status != coreEntity.StatusPending {
		return nil, nil
	}
	t.Status = status
	t.ApprovedByID = &approvedByID
	t.ApprovedAt = &approvedAt
	t.UpdatedAt = approvedAt
	s.rows[id] = t
	return &t, nil
}

type MemberStore struct {
	Members []memberEntity.Member
	Links   []memberEntity.DepartmentLink
	Err     error
}

func (s *MemberStore) List(ctx context.Context) ([]memberEntity.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := append([]memberEntity.Member(nil), s.Members...)
	sort.SliceStable(out, func(i, j int) bool {
		return memberEntity.DisplayLabel(&out[i]) < memberEntity.DisplayLabel(&out[j])
	})
	return out, nil
}

func (s *MemberStore) ListDepartmentLinks(ctx context.Context) ([]memberEntity.DepartmentLink, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]memberEntity.DepartmentLink(nil), s.Links...), nil
}

func (s *MemberStore) GetByID(ctx context.Context, id int64) (*memberEntity.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Members {
		if s.Members[i].ID == id {
			m := s.Members[i]
			return &m, nil
		}
	}
	return nil, nil
}
