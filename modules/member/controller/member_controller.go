package controller

import (
	"team-scheduler/core/controller"
	"team-scheduler/modules/member/service"

	"github.com/labstack/echo/v4"
)

type MemberController struct {
	controller.BaseController
	MemberService service.MemberServiceInterface
}

func NewMemberController(svc service.MemberServiceInterface) *MemberController {
	return &MemberController{
		BaseController: controller.NewBaseController(),
		MemberService:  svc,
	}
}

// ListMembers handles GET /members
// @Summary List members
// @Description Members with their departments, ordered by display label
// @Tags Member
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.MemberResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /private/members [get]
func (controller *MemberController) ListMembers(c echo.Context) error {
	members, appErr := controller.MemberService.ListMembers(c.Request().Context())
	if appErr != nil {
		return controller.ErrorResponse(c, appErr)
	}

	return controller.SuccessResponse(c, members, "list members success")
}
