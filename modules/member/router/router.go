package router

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/member/controller"

	"github.com/labstack/echo/v4"
)

type MemberRouter struct {
	controller *controller.MemberController
}

func NewMemberRouter(controller *controller.MemberController) *MemberRouter {
	return &MemberRouter{controller: controller}
}

func (r *MemberRouter) Register(private *echo.Group, mw *middleware.Middleware) {
	group := private.Group("/members", mw.AuthMiddleware())
	group.GET("", r.controller.ListMembers)
}
