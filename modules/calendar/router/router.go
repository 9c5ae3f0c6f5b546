package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		controller: controller,
	}
}

func (r *CalendarRouter) Register(private *echo.Group, mw *middleware.Middleware) {
	calendarRoutes := private.Group("/calendar")
	calendarRoutes.Use(mw.AuthMiddleware())

	calendarRoutes.GET("", r.controller.GetCalendar)
	calendarRoutes.POST("/export", r.controller.ExportMonth)
}
