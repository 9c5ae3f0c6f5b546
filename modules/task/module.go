package task

import (
	"team-scheduler/core/middleware"
	"team-scheduler/core/validation"
	"team-scheduler/modules/task/controller"
	"team-scheduler/modules/task/repository"
	"team-scheduler/modules/task/router"
	"team-scheduler/modules/task/service"

	"github.com/labstack/echo/v4"
)

func Init(private *echo.Group, mw *middleware.Middleware, repo repository.TaskRepositoryInterface, v *validation.Validator) {
	svc := service.NewTaskService(repo, v)
	ctrl := controller.NewTaskController(svc)

	router.NewTaskRouter(ctrl).Register(private, mw)
}
