package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/modules/approval/dto"
	"team-scheduler/modules/approval/service"

	"github.com/labstack/echo/v4"
)

type ApprovalController struct {
	controller.BaseController
	ApprovalService service.ApprovalServiceInterface
}

func NewApprovalController(svc service.ApprovalServiceInterface) *ApprovalController {
	return &ApprovalController{
		BaseController:  controller.NewBaseController(),
		ApprovalService: svc,
	}
}

// Approve handles POST /approve
// @Summary Approve or decline
// @Description Decides a pending appointment or task owned by the caller
// @Tags Approval
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransitionRequest true "Decision"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /private/approve [post]
func (c *ApprovalController) Approve(ctx echo.Context) error {
	principal, appErr := controller.PrincipalFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ApprovalService.Transition(ctx.Request().Context(), principal, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Status updated successfully")
}
