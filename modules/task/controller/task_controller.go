package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/modules/task/dto"
	"team-scheduler/modules/task/service"

	"github.com/labstack/echo/v4"
)

type TaskController struct {
	controller.BaseController
	TaskService service.TaskServiceInterface
}

func NewTaskController(svc service.TaskServiceInterface) *TaskController {
	return &TaskController{
		BaseController: controller.NewBaseController(),
		TaskService:    svc,
	}
}

// CreateTask handles POST /tasks
// @Summary Assign a task
// @Tags Task
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /private/tasks [post]
func (c *TaskController) CreateTask(ctx echo.Context) error {
	principal, appErr := controller.PrincipalFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.TaskService.Create(ctx.Request().Context(), principal, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Task created successfully")
}
