package calendar

import (
	"team-scheduler/core/cache"
	"team-scheduler/core/middleware"
	"team-scheduler/core/queue"
	"team-scheduler/core/storage"
	"team-scheduler/core/validation"
	appointmentRepo "team-scheduler/modules/appointment/repository"
	"team-scheduler/modules/calendar/controller"
	"team-scheduler/modules/calendar/router"
	"team-scheduler/modules/calendar/service"
	memberService "team-scheduler/modules/member/service"
	taskRepo "team-scheduler/modules/task/repository"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Appointments appointmentRepo.AppointmentRepositoryInterface
	Tasks        taskRepo.TaskRepositoryInterface
	Members      memberService.MemberServiceInterface
	Cache        cache.Cache
	Jobs         queue.Enqueuer
	Uploader     storage.Uploader
	Validator    *validation.Validator
}

// Init registers the calendar routes and returns the service, which the
// approval module uses for cache invalidation and the worker for warming.
func Init(private *echo.Group, mw *middleware.Middleware, deps Deps) service.CalendarService {
	calendarService := service.NewCalendarService(deps.Appointments, deps.Tasks, deps.Members, deps.Cache, deps.Jobs, deps.Uploader)
	calendarController := controller.NewCalendarController(calendarService, deps.Validator)

	router.NewCalendarRouter(calendarController).Register(private, mw)

	return calendarService
}
