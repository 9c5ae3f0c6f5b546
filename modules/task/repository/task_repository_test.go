package repository

import (
	"context"
	"testing"
	"time"

	coreEntity "team-scheduler/core/entity"
	"team-scheduler/core/testkit"
	"team-scheduler/modules/task/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTaskWhere(t *testing.T) {
	month := coreEntity.MonthWindow(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	where, args := buildTaskWhere(entity.TaskFilter{
		AssignedToID: 7, Status: coreEntity.StatusApproved, AnchoredIn: &month,
	})
	assert.Equal(t,
		"assigned_to_id = $1 AND status = $2 AND ((start_at >= $3 AND start_at <= $4) OR (deadline_at >= $3 AND deadline_at <= $4))",
		where)
	assert.Equal(t, []any{int64(7), coreEntity.StatusApproved, month.Start, month.End}, args)

	where, args = buildTaskWhere(entity.TaskFilter{AssignedToID: 7})
	assert.Equal(t, "assigned_to_id = $1", where)
	assert.Len(t, args, 1)
}

func tp(t time.Time) *time.Time { return &t }

func TestTaskRepository_Postgres(t *testing.T) {
	db := testkit.OpenTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	tasks := []*entity.Task{
		{Title: "no deadline", StartAt: tp(day.Add(9 * time.Hour))},
		{Title: "late", DeadlineAt: tp(day.Add(20 * time.Hour))},
		{Title: "early", DeadlineAt: tp(day.Add(8 * time.Hour))},
		{Title: "elsewhere", DeadlineAt: tp(day.Add(72 * time.Hour))},
	}
	for i, task := range tasks {
		task.ID = string(rune('a' + i))
		task.Status = coreEntity.StatusPending
		task.CreatedByID = 3
		task.AssignedToID = 7
		task.CreatedAt = day
		task.UpdatedAt = day
		_, err := repo.Create(ctx, task)
		require.NoError(t, err)
	}

	window := coreEntity.DayWindow(day)
	list, err := repo.FindMany(ctx, entity.TaskFilter{AssignedToID: 7, AnchoredIn: &window})
	require.NoError(t, err)
	titles := []string{}
	for _, task := range list {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"early", "late", "no deadline"}, titles)

	updated, err := repo.UpdateStatus(ctx, "c", coreEntity.StatusDeclined, 7, day)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, coreEntity.StatusDeclined, updated.Status)

	again, err := repo.UpdateStatus(ctx, "c", coreEntity.StatusApproved, 7, day)
	require.NoError(t, err)
	assert.Nil(t, again)
}
