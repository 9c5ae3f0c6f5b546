package dto

import (
	"time"

	"team-scheduler/core/utils"
)

// ===================== Request DTOs =====================

// CreateAppointmentRequest for booking an appointment with a member.
// Subject and content are trimmed before validation; an empty content is
// stored as absent.
type CreateAppointmentRequest struct {
	Subject  string        `json:"subject" validate:"required"`
	Content  *string       `json:"content"`
	MemberID utils.FlexInt `json:"memberId"`
	StartAt  string        `json:"startAt" validate:"required,timestamp"`
	EndAt    string        `json:"endAt" validate:"required,timestamp"`
}

// ===================== Response DTOs =====================

type AppointmentResponse struct {
	ID           string     `json:"id"`
	Subject      string     `json:"subject"`
	Content      *string    `json:"content"`
	StartAt      time.Time  `json:"startAt"`
	EndAt        time.Time  `json:"endAt"`
	Status       string     `json:"status"`
	CreatedByID  int64      `json:"createdById"`
	MemberID     int64      `json:"memberId"`
	ApprovedByID *int64     `json:"approvedById"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
