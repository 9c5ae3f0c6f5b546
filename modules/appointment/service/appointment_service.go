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
	"team-scheduler/modules/appointment/dto"
	"team-scheduler/modules/appointment/entity"
	"team-scheduler/modules/appointment/mapper"
	"team-scheduler/modules/appointment/repository"
)

type AppointmentService struct {
	repo      repository.AppointmentRepositoryInterface
	validator *validation.Validator
	now       func() time.Time
}

type AppointmentServiceInterface interface {
	Create(ctx context.Context, principal utils.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError)
}

func NewAppointmentService(repo repository.AppointmentRepositoryInterface, validator *validation.Validator) *AppointmentService {
	return &AppointmentService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// Create validates req and stores a pending appointment created by principal.
func (s *AppointmentService) Create(ctx context.Context, principal utils.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	appointment, appErr := s.Validate(req)
	if appErr != nil {
		return nil, appErr
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create appointment", err)
	}
	now := s.now().UTC()
	appointment.ID = id
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	appointment.Status = coreEntity.StatusPending
	appointment.CreatedByID = principal.ID

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create appointment", err)
	}

	logger.Info("AppointmentService:Create",
		"id", created.ID,
		"member_id", created.MemberID,
		"created_by_id", created.CreatedByID,
	)
	return mapper.ToAppointmentResponse(created), nil
}

// Validate normalizes req and returns the appointment it describes. Every
// timestamp must parse and StartAt must be strictly before EndAt.
func (s *AppointmentService) Validate(req *dto.CreateAppointmentRequest) (*entity.Appointment, *errors.AppError) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.StartAt = strings.TrimSpace(req.StartAt)
	req.EndAt = strings.TrimSpace(req.EndAt)

	fields := s.validator.Fields(req)
	if !req.MemberID.Valid || req.MemberID.Value <= 0 {
		fields = append(fields, validation.FieldError{Field: "memberId", Message: "must be a positive integer"})
	}
	if appErr := validation.NewError(fields); appErr != nil {
		return nil, appErr
	}

	startAt, _ := utils.ParseTimestamp(req.StartAt)
	endAt, _ := utils.ParseTimestamp(req.EndAt)
	if !startAt.Before(endAt) {
		return nil, validation.Field("endAt", "must be after startAt")
	}

	content := req.Content
	if content != nil {
		content = utils.TrimToNil(*content)
	}

	return &entity.Appointment{
		Subject:  req.Subject,
		Content:  content,
		StartAt:  startAt,
		EndAt:    endAt,
		MemberID: req.MemberID.Value,
	}, nil
}
