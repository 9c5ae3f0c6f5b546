package entity

import (
	"time"

	coreEntity "team-scheduler/core/entity"
)

// Task is assigned by CreatedByID to AssignedToID. Only AssignedToID may
// approve or decline it.
type Task struct {
	coreEntity.BaseEntity
	Title        string                    `db:"title" json:"title"`
	Content      *string                   `db:"content" json:"content"`
	StartAt      *time.Time                `db:"start_at" json:"startAt"`
	EndAt        *time.Time                `db:"end_at" json:"endAt"`
	DeadlineAt   *time.Time                `db:"deadline_at" json:"deadlineAt"`
	Status       coreEntity.ApprovalStatus `db:"status" json:"status"`
	CreatedByID  int64                     `db:"created_by_id" json:"createdById"`
	AssignedToID int64                     `db:"assigned_to_id" json:"assignedToId"`
	ApprovedByID *int64                    `db:"approved_by_id" json:"approvedById"`
	ApprovedAt   *time.Time                `db:"approved_at" json:"approvedAt"`
}

func (t *Task) OwnerID() int64 {
	return t.AssignedToID
}

// Anchor is the timestamp a task is bucketed under in the month summary:
// StartAt, else DeadlineAt, else nil.
func (t *Task) Anchor() *time.Time {
	if t.StartAt != nil {
		return t.StartAt
	}
	return t.DeadlineAt
}

// TaskFilter selects a member's tasks in one status.
type TaskFilter struct {
	AssignedToID int64
	Status       coreEntity.ApprovalStatus

	// AnchoredIn keeps tasks whose StartAt or DeadlineAt lies within the
	// window, bounds inclusive.
	AnchoredIn *coreEntity.Window
}

func (f TaskFilter) Matches(t *Task) bool {
	if t.AssignedToID != f.AssignedToID {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.AnchoredIn != nil && !f.AnchoredIn.ContainsPtr(t.StartAt) && !f.AnchoredIn.ContainsPtr(t.DeadlineAt) {
		return false
	}
	return true
}

// Less is the listing order: DeadlineAt ascending with nulls last, then ID.
func Less(a, b *Task) bool {
	switch {
	case a.DeadlineAt == nil && b.DeadlineAt != nil:
		return false
	case a.DeadlineAt != nil && b.DeadlineAt == nil:
		return true
	case a.DeadlineAt != nil && !a.DeadlineAt.Equal(*b.DeadlineAt):
		return a.DeadlineAt.Before(*b.DeadlineAt)
	}
	return a.ID < b.ID
}
