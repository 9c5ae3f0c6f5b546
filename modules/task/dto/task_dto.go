package dto

import (
	"time"

	"team-scheduler/core/utils"
)

// CreateTaskRequest for assigning a task. Timestamps are optional and an
// unparseable one is treated as absent.
type CreateTaskRequest struct {
	Title        string        `json:"title" validate:"required"`
	Content      *string       `json:"content"`
	AssignedToID utils.FlexInt `json:"assignedToId"`
	StartAt      *string       `json:"startAt"`
	EndAt        *string       `json:"endAt"`
	DeadlineAt   *string       `json:"deadlineAt"`
}

type TaskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      *string    `json:"content"`
	StartAt      *time.Time `json:"startAt"`
	EndAt        *time.Time `json:"endAt"`
	DeadlineAt   *time.Time `json:"deadlineAt"`
	Status       string     `json:"status"`
	CreatedByID  int64      `json:"createdById"`
	AssignedToID int64      `json:"assignedToId"`
	ApprovedByID *int64     `json:"approvedById"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
