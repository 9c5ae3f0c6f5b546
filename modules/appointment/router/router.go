package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/appointment/controller"

	"github.com/labstack/echo/v4"
)

type AppointmentRouter struct {
	controller *controller.AppointmentController
}

func NewAppointmentRouter(controller *controller.AppointmentController) *AppointmentRouter {
	return &AppointmentRouter{controller: controller}
}

func (r *AppointmentRouter) Register(private *echo.Group, mw *middleware.Middleware) {
	group := private.Group("/appointments", mw.AuthMiddleware())
	group.POST("", r.controller.CreateAppointment)
}
