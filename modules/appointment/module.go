package appointment

import (
	"team-scheduler/core/middleware"
	"team-scheduler/core/validation"
	"team-scheduler/modules/appointment/controller"
	"team-scheduler/modules/appointment/repository"
	"team-scheduler/modules/appointment/router"
	"team-scheduler/modules/appointment/service"

	"github.com/labstack/echo/v4"
)

func Init(private *echo.Group, mw *middleware.Middleware, repo repository.AppointmentRepositoryInterface, v *validation.Validator) {
	svc := service.NewAppointmentService(repo, v)
	ctrl := controller.NewAppointmentController(svc)

	router.NewAppointmentRouter(ctrl).Register(private, mw)
}
