package entity

// ApprovalStatus is the lifecycle state shared by appointments and tasks.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusDeclined ApprovalStatus = "declined"
)

var transitions = map[ApprovalStatus][]ApprovalStatus{
	StatusPending: {StatusApproved, StatusDeclined},
}

// CanTransitionTo reports whether the state machine allows s -> to.
// Approved and declined are terminal.
func (s ApprovalStatus) CanTransitionTo(to ApprovalStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}
