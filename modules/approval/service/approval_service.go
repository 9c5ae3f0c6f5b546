package service

import (
	"context"
	"strings"
	"time"

	"team-scheduler/core/constants"
	coreEntity "team-scheduler/core/entity"
	"team-scheduler/core/errors"
	"team-scheduler/core/logger"
	"team-scheduler/core/utils"
	"team-scheduler/core/validation"
	"team-scheduler/modules/approval/dto"
	appointmentMapper "team-scheduler/modules/appointment/mapper"
	appointmentRepo "team-scheduler/modules/appointment/repository"
	taskMapper "team-scheduler/modules/task/mapper"
	taskRepo "team-scheduler/modules/task/repository"
)

// SummaryInvalidator drops cached month summaries affected by a decision.
type SummaryInvalidator interface {
	InvalidateMonth(ctx context.Context, memberID int64, at time.Time)
}

type ApprovalService struct {
	appointments appointmentRepo.AppointmentRepositoryInterface
	tasks        taskRepo.TaskRepositoryInterface
	invalidator  SummaryInvalidator
	validator    *validation.Validator
	now          func() time.Time
}

type ApprovalServiceInterface interface {
	Transition(ctx context.Context, principal utils.Principal, req *dto.TransitionRequest) (*dto.TransitionResponse, *errors.AppError)
}

func NewApprovalService(
	appointments appointmentRepo.AppointmentRepositoryInterface,
	tasks taskRepo.TaskRepositoryInterface,
	invalidator SummaryInvalidator,
	validator *validation.Validator,
) *ApprovalService {
	return &ApprovalService{
		appointments: appointments,
		tasks:        tasks,
		invalidator:  invalidator,
		validator:    validator,
		now:          time.Now,
	}
}

// errForbidden is returned both for a record the principal does not own and
// for an unknown id.
func errForbidden() *errors.AppError {
	return errors.NewAppError(errors.ErrForbidden, "Forbidden", nil)
}

func errAlreadyDecided() *errors.AppError {
	return errors.NewAppError(errors.ErrInvalidStateTransition, "Only pending records can be approved or declined", nil)
}

// Transition moves a pending appointment or task to approved or declined on
// behalf of its owner and stamps approvedById and approvedAt.
func (s *ApprovalService) Transition(ctx context.Context, principal utils.Principal, req *dto.TransitionRequest) (*dto.TransitionResponse, *errors.AppError) {
	req.ID = strings.TrimSpace(req.ID)
	if appErr := s.validator.Struct(req); appErr != nil {
		return nil, appErr
	}
	target := coreEntity.ApprovalStatus(req.Status)

	if req.Type == dto.EntityTask {
		return s.transitionTask(ctx, principal, req.ID, target)
	}
	return s.transitionAppointment(ctx, principal, req.ID, target)
}

func authorize(ownerID int64, current coreEntity.ApprovalStatus, principal utils.Principal, target coreEntity.ApprovalStatus) *errors.AppError {
	if ownerID != principal.ID {
		return errForbidden()
	}
	if !current.CanTransitionTo(target) {
		return errAlreadyDecided()
	}
	return nil
}

func (s *ApprovalService) transitionAppointment(ctx context.Context, principal utils.Principal, id string, target coreEntity.ApprovalStatus) (*dto.TransitionResponse, *errors.AppError) {
	storeCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	appointment, err := s.appointments.GetByID(storeCtx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get appointment", err)
	}
	if appointment == nil {
		return nil, errForbidden()
	}
	if appErr := authorize(appointment.OwnerID(), appointment.Status, principal, target); appErr != nil {
		return nil, appErr
	}

	updated, err := s.appointments.UpdateStatus(storeCtx, id, target, principal.ID, s.now().UTC())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update appointment", err)
	}
	if updated == nil {
		// decided by a concurrent request
		return nil, errAlreadyDecided()
	}

	logger.Info("ApprovalService:Transition",
		"type", dto.EntityAppointment,
		"id", updated.ID,
		"status", updated.Status,
		"approved_by_id", principal.ID,
	)
	s.invalidator.InvalidateMonth(ctx, updated.MemberID, updated.StartAt)

	return &dto.TransitionResponse{Appointment: appointmentMapper.ToAppointmentResponse(updated)}, nil
}

func (s *ApprovalService) transitionTask(ctx context.Context, principal utils.Principal, id string, target coreEntity.ApprovalStatus) (*dto.TransitionResponse, *errors.AppError) {
	storeCtx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, err := s.tasks.GetByID(storeCtx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get task", err)
	}
	if task == nil {
		return nil, errForbidden()
	}
	if appErr := authorize(task.OwnerID(), task.Status, principal, target); appErr != nil {
		return nil, appErr
	}

	updated, err := s.tasks.UpdateStatus(storeCtx, id, target, principal.ID, s.now().UTC())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update task", err)
	}
	if updated == nil {
		return nil, errAlreadyDecided()
	}

	logger.Info("ApprovalService:Transition",
		"type", dto.EntityTask,
		"id", updated.ID,
		"status", updated.Status,
		"approved_by_id", principal.ID,
	)
	// A task is selected for a month by either anchor.
	invalidated := map[string]bool{}
	for _, at := range []*time.Time{updated.StartAt, updated.DeadlineAt} {
		if at == nil || invalidated[at.Format(constants.MonthLayout)] {
			continue
		}
		invalidated[at.Format(constants.MonthLayout)] = true
		s.invalidator.InvalidateMonth(ctx, updated.AssignedToID, *at)
	}

	return &dto.TransitionResponse{Task: taskMapper.ToTaskResponse(updated)}, nil
}
