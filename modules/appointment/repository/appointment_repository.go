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
	"team-scheduler/modules/appointment/entity"
)

const appointmentColumns = `id, subject, content, start_at, end_at, status, created_by_id, member_id,
		approved_by_id, approved_at, created_at, updated_at`

// AppointmentRepository persists appointments in the appointments table.
type AppointmentRepository struct {
	DB database.IDatabase
}

func NewAppointmentRepository(db database.IDatabase) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

type AppointmentRepositoryInterface interface {
	Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindMany(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// UpdateStatus applies a decision to a pending appointment. It returns
	// nil, nil when the row is missing or no longer pending.
	UpdateStatus(ctx context.Context, id string, status coreEntity.ApprovalStatus, approvedByID int64, approvedAt time.Time) (*entity.Appointment, error)
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	query := `
		INSERT INTO appointments (id, subject, content, start_at, end_at, status, created_by_id, member_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + appointmentColumns

	var created entity.Appointment
	err := r.DB.GetContext(ctx, &created, query,
		appointment.ID, appointment.Subject, appointment.Content, appointment.StartAt, appointment.EndAt,
		appointment.Status, appointment.CreatedByID, appointment.MemberID, appointment.CreatedAt)
	if err != nil {
		logger.Error("AppointmentRepository:Create", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var appointment entity.Appointment
	err := r.DB.GetContext(ctx, &appointment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AppointmentRepository:GetByID", "error", err)
		return nil, err
	}

	return &appointment, nil
}

func (r *AppointmentRepository) FindMany(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	where, args := buildAppointmentWhere(filter)
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE ` + where + ` ORDER BY start_at ASC, id ASC`

	appointments := []entity.Appointment{}
	if err := r.DB.SelectContext(ctx, &appointments, query, args...); err != nil {
		logger.Error("AppointmentRepository:FindMany", "error", err)
		return nil, err
	}

	return appointments, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status coreEntity.ApprovalStatus, approvedByID int64, approvedAt time.Time) (*entity.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $2, approved_by_id = $3, approved_at = $4, updated_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + appointmentColumns

	var updated entity.Appointment
	err := r.DB.GetContext(ctx, &updated, query, id, status, approvedByID, approvedAt, coreEntity.StatusPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AppointmentRepository:UpdateStatus", "error", err)
		return nil, err
	}

	return &updated, nil
}

func buildAppointmentWhere(f entity.AppointmentFilter) (string, []any) {
	clauses := []string{"member_id = $1"}
	args := []any{f.MemberID}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		clauses = append(clauses, "status = "+next(f.Status))
	}
	if f.Overlaps != nil {
		clauses = append(clauses, "start_at < "+next(f.Overlaps.End), "end_at > "+next(f.Overlaps.Start))
	}
	if f.StartsIn != nil {
		clauses = append(clauses, "start_at >= "+next(f.StartsIn.Start), "start_at <= "+next(f.StartsIn.End))
	}
	return strings.Join(clauses, " AND "), args
}
