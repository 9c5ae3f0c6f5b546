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
	"team-scheduler/modules/task/dto"
	"team-scheduler/modules/task/entity"
	"team-scheduler/modules/task/mapper"
	"team-scheduler/modules/task/repository"
)

type TaskService struct {
	repo      repository.TaskRepositoryInterface
	validator *validation.Validator
	now       func() time.Time
}

type TaskServiceInterface interface {
	Create(ctx context.Context, principal utils.Principal, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError)
}

func NewTaskService(repo repository.TaskRepositoryInterface, validator *validation.Validator) *TaskService {
	return &TaskService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// Create validates req and stores a pending task created by principal.
func (s *TaskService) Create(ctx context.Context, principal utils.Principal, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, appErr := s.Validate(req)
	if appErr != nil {
		return nil, appErr
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create task", err)
	}
	now := s.now().UTC()
	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Status = coreEntity.StatusPending
	task.CreatedByID = principal.ID

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create task", err)
	}

	logger.Info("TaskService:Create",
		"id", created.ID,
		"assigned_to_id", created.AssignedToID,
		"created_by_id", created.CreatedByID,
	)
	return mapper.ToTaskResponse(created), nil
}

// Validate normalizes req and returns the task it describes. Unlike
// appointments, a timestamp that does not parse is dropped without error.
func (s *TaskService) Validate(req *dto.CreateTaskRequest) (*entity.Task, *errors.AppError) {
	req.Title = strings.TrimSpace(req.Title)

	fields := s.validator.Fields(req)
	if !req.AssignedToID.Valid || req.AssignedToID.Value <= 0 {
		fields = append(fields, validation.FieldError{Field: "assignedToId", Message: "must be a positive integer"})
	}
	if appErr := validation.NewError(fields); appErr != nil {
		return nil, appErr
	}

	startAt := utils.ParseOptionalTimestamp(req.StartAt)
	endAt := utils.ParseOptionalTimestamp(req.EndAt)
	if startAt != nil && endAt != nil && !startAt.Before(*endAt) {
		return nil, validation.Field("endAt", "must be after startAt")
	}

	var content *string
	if req.Content != nil {
		content = utils.TrimToNil(*req.Content)
	}

	return &entity.Task{
		Title:        req.Title,
		Content:      content,
		StartAt:      startAt,
		EndAt:        endAt,
		DeadlineAt:   utils.ParseOptionalTimestamp(req.DeadlineAt),
		AssignedToID: req.AssignedToID.Value,
	}, nil
}
