package entity

import (
	"time"

	coreEntity "team-scheduler/core/entity"
)

// Appointment is booked by CreatedByID for MemberID. Only MemberID may
// approve or decline it.
type Appointment struct {
	coreEntity.BaseEntity
	Subject      string                    `db:"subject" json:"subject"`
	Content      *string                   `db:"content" json:"content"`
	StartAt      time.Time                 `db:"start_at" json:"startAt"`
	EndAt        time.Time                 `db:"end_at" json:"endAt"`
	Status       coreEntity.ApprovalStatus `db:"status" json:"status"`
	CreatedByID  int64                     `db:"created_by_id" json:"createdById"`
	MemberID     int64                     `db:"member_id" json:"memberId"`
	ApprovedByID *int64                    `db:"approved_by_id" json:"approvedById"`
	ApprovedAt   *time.Time                `db:"approved_at" json:"approvedAt"`
}

func (a *Appointment) OwnerID() int64 {
	return a.MemberID
}

// AppointmentFilter selects a member's appointments in one status. At most
// one of Overlaps and StartsIn is expected to be set.
type AppointmentFilter struct {
	MemberID int64
	Status   coreEntity.ApprovalStatus

	// Overlaps keeps appointments with StartAt < End and EndAt > Start.
	Overlaps *coreEntity.Window
	// StartsIn keeps appointments whose StartAt is within the window.
	StartsIn *coreEntity.Window
}

func (f AppointmentFilter) Matches(a *Appointment) bool {
	if a.MemberID != f.MemberID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Overlaps != nil && !f.Overlaps.Overlaps(a.StartAt, a.EndAt) {
		return false
	}
	if f.StartsIn != nil && !f.StartsIn.Contains(a.StartAt) {
		return false
	}
	return true
}

// Less is the listing order: StartAt ascending, then ID.
func Less(a, b *Appointment) bool {
	if !a.StartAt.Equal(b.StartAt) {
		return a.StartAt.Before(b.StartAt)
	}
	return a.ID < b.ID
}
