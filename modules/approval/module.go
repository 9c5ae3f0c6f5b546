package approval

import (
	"team-scheduler/core/middleware"
	"team-scheduler/core/validation"
	"team-scheduler/modules/approval/controller"
	"team-scheduler/modules/approval/router"
	"team-scheduler/modules/approval/service"
	appointmentRepo "team-scheduler/modules/appointment/repository"
	taskRepo "team-scheduler/modules/task/repository"

	"github.com/labstack/echo/v4"
)

func Init(
	private *echo.Group,
	mw *middleware.Middleware,
	appointments appointmentRepo.AppointmentRepositoryInterface,
	tasks taskRepo.TaskRepositoryInterface,
	invalidator service.SummaryInvalidator,
	v *validation.Validator,
) {
	svc := service.NewApprovalService(appointments, tasks, invalidator, v)
	ctrl := controller.NewApprovalController(svc)

	router.NewApprovalRouter(ctrl).Register(private, mw)
}
