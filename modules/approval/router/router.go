package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/approval/controller"

	"github.com/labstack/echo/v4"
)

type ApprovalRouter struct {
	controller *controller.ApprovalController
}

func NewApprovalRouter(controller *controller.ApprovalController) *ApprovalRouter {
	return &ApprovalRouter{controller: controller}
}

func (r *ApprovalRouter) Register(private *echo.Group, mw *middleware.Middleware) {
	private.POST("/approve", r.controller.Approve, mw.AuthMiddleware())
}
