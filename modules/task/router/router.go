package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/task/controller"

	"github.com/labstack/echo/v4"
)

type TaskRouter struct {
	controller *controller.TaskController
}

func NewTaskRouter(controller *controller.TaskController) *TaskRouter {
	return &TaskRouter{controller: controller}
}

func (r *TaskRouter) Register(private *echo.Group, mw *middleware.Middleware) {
	group := private.Group("/tasks", mw.AuthMiddleware())
	group.POST("", r.controller.CreateTask)
}
