package entity

import (
	"sort"
	"testing"
	"time"

	coreEntity "team-scheduler/core/entity"

	"github.com/stretchr/testify/assert"
)

func tp(s string) *time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return &t
}

func TestTaskFilter_AnchoredIn(t *testing.T) {
	day := coreEntity.DayWindow(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	f := TaskFilter{AssignedToID: 7, Status: coreEntity.StatusApproved, AnchoredIn: &day}

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"start on day", Task{AssignedToID: 7, Status: coreEntity.StatusApproved, StartAt: tp("2025-03-14T00:00:00Z")}, true},
		{"deadline at last millisecond", Task{AssignedToID: 7, Status: coreEntity.StatusApproved, DeadlineAt: tp("2025-03-14T23:59:59.999Z")}, true},
		{"spans day without anchor on it", Task{AssignedToID: 7, Status: coreEntity.StatusApproved, StartAt: tp("2025-03-13T10:00:00Z"), DeadlineAt: tp("2025-03-15T10:00:00Z")}, false},
		{"no timestamps", Task{AssignedToID: 7, Status: coreEntity.StatusApproved}, false},
		{"other assignee", Task{AssignedToID: 8, Status: coreEntity.StatusApproved, StartAt: tp("2025-03-14T09:00:00Z")}, false},
		{"pending", Task{AssignedToID: 7, Status: coreEntity.StatusPending, StartAt: tp("2025-03-14T09:00:00Z")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Matches(&tt.task))
		})
	}
}

func TestAnchor(t *testing.T) {
	start, deadline := tp("2025-03-01T00:00:00Z"), tp("2025-03-09T00:00:00Z")
	assert.Equal(t, start, (&Task{StartAt: start, DeadlineAt: deadline}).Anchor())
	assert.Equal(t, deadline, (&Task{DeadlineAt: deadline}).Anchor())
	assert.Nil(t, (&Task{}).Anchor())
}

func TestLess_DeadlineNullsLast(t *testing.T) {
	tasks := []Task{
		{BaseEntity: coreEntity.BaseEntity{ID: "z"}},
		{BaseEntity: coreEntity.BaseEntity{ID: "late"}, DeadlineAt: tp("2025-03-20T00:00:00Z")},
		{BaseEntity: coreEntity.BaseEntity{ID: "b"}, DeadlineAt: tp("2025-03-10T00:00:00Z")},
		{BaseEntity: coreEntity.BaseEntity{ID: "a"}, DeadlineAt: tp("2025-03-10T00:00:00Z")},
		{BaseEntity: coreEntity.BaseEntity{ID: "y"}},
	}
	sort.Slice(tasks, func(i, j int) bool { return Less(&tasks[i], &tasks[j]) })

	ids := make([]string, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}
	assert.Equal(t, []string{"a", "b", "late", "y", "z"}, ids)
}

func TestOwnerID_IsAssignee(t *testing.T) {
	assert.Equal(t, int64(7), (&Task{CreatedByID: 3, AssignedToID: 7}).OwnerID())
}
