package member

import (
	"team-scheduler/core/middleware"
	"team-scheduler/modules/member/controller"
	"team-scheduler/modules/member/repository"
	"team-scheduler/modules/member/router"
	"team-scheduler/modules/member/service"

	"github.com/labstack/echo/v4"
)

// Init registers GET /members and returns the service for the calendar
// export.
func Init(private *echo.Group, mw *middleware.Middleware, repo repository.MemberRepositoryInterface) *service.MemberService {
	svc := service.NewMemberService(repo)
	ctrl := controller.NewMemberController(svc)

	router.NewMemberRouter(ctrl).Register(private, mw)

	return svc
}
