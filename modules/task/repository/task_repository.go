package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"team-scheduler/core/database"
	coreEntity "team-scheduler/core/entity"
	"team-scheduler/core/logger"
	"team-scheduler/modules/task/entity"
)

const taskColumns = `id, title, content, start_at, end_at, deadline_at, status, created_by_id, assigned_to_id,
		approved_by_id, approved_at, created_at, updated_at`

// TaskRepository persists tasks in the tasks table.
type TaskRepository struct {
	DB database.IDatabase
}

func NewTaskRepository(db database.IDatabase) *TaskRepository {
	return &TaskRepository{DB: db}
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	FindMany(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error)
	// UpdateStatus applies a decision to a pending task. It returns nil, nil
	// when the row is missing or no longer pending.
	UpdateStatus(ctx context.Context, id string, status coreEntity.ApprovalStatus, approvedByID int64, approvedAt time.Time) (*entity.Task, error)
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := `
		INSERT INTO tasks (id, title, content, start_at, end_at, deadline_at, status, created_by_id, assigned_to_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING ` + taskColumns

	var created entity.Task
	err := r.DB.GetContext(ctx, &created, query,
		task.ID, task.Title, task.Content, task.StartAt, task.EndAt, task.DeadlineAt,
		task.Status, task.CreatedByID, task.AssignedToID, task.CreatedAt)
	if err != nil {
		logger.Error("TaskRepository:Create", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var task entity.Task
	err := r.DB.GetContext(ctx, &task, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetByID", "error", err)
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) FindMany(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
	where, args := buildTaskWhere(filter)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + where + ` ORDER BY deadline_at ASC NULLS LAST, id ASC`

	tasks := []entity.Task{}
	if err := r.DB.SelectContext(ctx, &tasks, query, args...); err != nil {
		logger.Error("TaskRepository:FindMany", "error", err)
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status coreEntity.ApprovalStatus, approvedByID int64, approvedAt time.Time) (*entity.Task, error) {
	query := `
		UPDATE tasks
		SET status = $2, approved_by_id = $3, approved_at = $4, updated_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + taskColumns

	var updated entity.Task
	err := r.DB.GetContext(ctx, &updated, query, id, status, approvedByID, approvedAt, coreEntity.StatusPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:UpdateStatus", "error", err)
		return nil, err
	}

	return &updated, nil
}

func buildTaskWhere(f entity.TaskFilter) (string, []any) {
	clauses := []string{"assigned_to_id = $1"}
	args := []any{f.AssignedToID}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		clauses = append(clauses, "status = "+next(f.Status))
	}
	if f.AnchoredIn != nil {
		start, end := next(f.AnchoredIn.Start), next(f.AnchoredIn.End)
		clauses = append(clauses, fmt.Sprintf(
			"((start_at >= %[1]s AND start_at <= %[2]s) OR (deadline_at >= %[1]s AND deadline_at <= %[2]s))",
			start, end))
	}
	return strings.Join(clauses, " AND "), args
}
