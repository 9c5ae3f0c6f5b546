package controller

import (
	"time"

	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/core/utils"
	"team-scheduler/core/validation"
	"team-scheduler/modules/calendar/dto"
	"team-scheduler/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	service   service.CalendarService
	validator *validation.Validator
}

func NewCalendarController(service service.CalendarService, validator *validation.Validator) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		service:        service,
		validator:      validator,
	}
}

// parseQuery binds memberId, date and view from the query string. View
// defaults to day.
func (c *CalendarController) parseQuery(ctx echo.Context) (int64, time.Time, string, *errors.AppError) {
	var q dto.CalendarQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &q); err != nil {
		return 0, time.Time{}, "", errors.NewAppError(errors.ErrInvalidRequestData, "Invalid query parameters", err)
	}

	fields := c.validator.Fields(&q)
	memberID, ok := utils.ParseInt(q.MemberID)
	if q.MemberID != "" && (!ok || memberID <= 0) {
		fields = append(fields, validation.FieldError{Field: "memberId", Message: "must be a positive integer"})
	}
	if appErr := validation.NewError(fields); appErr != nil {
		return 0, time.Time{}, "", appErr
	}

	date, _ := utils.ParseDate(q.Date)
	view := q.View
	if view == "" {
		view = dto.ViewDay
	}
	return memberID, date, view, nil
}

// GetCalendar handles GET /calendar
// @Summary Calendar view
// @Description Day view (approved and pending lists) or month summary (approved counts per date)
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param memberId query int true "Member ID"
// @Param date query string true "YYYY-MM-DD"
// @Param view query string false "day or month"
// @Success 200 {object} dto.DayView
// @Success 200 {object} dto.MonthSummaryResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /private/calendar [get]
func (c *CalendarController) GetCalendar(ctx echo.Context) error {
	if _, appErr := controller.PrincipalFromContext(ctx); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	memberID, date, view, appErr := c.parseQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if view == dto.ViewMonth {
		summary, appErr := c.service.GetMonthSummary(ctx.Request().Context(), memberID, date)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, dto.MonthSummaryResponse{Summary: summary}, "Success")
	}

	day, appErr := c.service.GetDayView(ctx.Request().Context(), memberID, date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, day, "Success")
}

// ExportMonth handles POST /calendar/export
// @Summary Export a month summary
// @Description Uploads the member's month summary to object storage
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param memberId query int true "Member ID"
// @Param date query string true "Any date in the month, YYYY-MM-DD"
// @Success 200 {object} dto.ExportResponse
// @Failure 503 {object} controller.ErrorResponse
// @Router /private/calendar/export [post]
func (c *CalendarController) ExportMonth(ctx echo.Context) error {
	if _, appErr := controller.PrincipalFromContext(ctx); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	memberID, date, _, appErr := c.parseQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	result, appErr := c.service.ExportMonth(ctx.Request().Context(), memberID, date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Export uploaded")
}
