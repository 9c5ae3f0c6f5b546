package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/modules/appointment/dto"
	"team-scheduler/modules/appointment/service"

	"github.com/labstack/echo/v4"
)

// AppointmentController handles appointment HTTP requests
type AppointmentController struct {
	controller.BaseController
	AppointmentService service.AppointmentServiceInterface
}

func NewAppointmentController(svc service.AppointmentServiceInterface) *AppointmentController {
	return &AppointmentController{
		BaseController:     controller.NewBaseController(),
		AppointmentService: svc,
	}
}

// CreateAppointment handles POST /appointments
// @Summary Book an appointment
// @Description Creates a pending appointment for the target member
// @Tags Appointment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /private/appointments [post]
func (c *AppointmentController) CreateAppointment(ctx echo.Context) error {
	principal, appErr := controller.PrincipalFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	var req dto.CreateAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AppointmentService.Create(ctx.Request().Context(), principal, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Appointment created successfully")
}
