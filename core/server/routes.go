package server

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"time"

	"team-scheduler/core/cache"
	"team-scheduler/core/config"
	"team-scheduler/core/constants"
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/core/logger"
	"team-scheduler/core/middleware"
	"team-scheduler/core/queue"
	"team-scheduler/core/storage"
	"team-scheduler/core/validation"
	"team-scheduler/modules/appointment"
	appointmentRepo "team-scheduler/modules/appointment/repository"
	"team-scheduler/modules/approval"
	"team-scheduler/modules/calendar"
	calendarService "team-scheduler/modules/calendar/service"
	"team-scheduler/modules/member"
	memberRepo "team-scheduler/modules/member/repository"
	"team-scheduler/modules/task"
	taskRepo "team-scheduler/modules/task/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Stores struct {
	Appointments appointmentRepo.AppointmentRepositoryInterface
	Tasks        taskRepo.TaskRepositoryInterface
	Members      memberRepo.MemberRepositoryInterface
}

// Infra holds the optional collaborators. Nil values disable the feature.
type Infra struct {
	Cache    cache.Cache
	Jobs     queue.Enqueuer
	Uploader storage.Uploader
	Pinger   func(ctx context.Context) error
}

// NewEcho builds the Echo instance with the shared middleware chain and the
// error handler that writes controller.ErrorResponse envelopes.
func NewEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				args = append(args, "error", v.Error.Error())
			}
			logger.Info("HTTP", args...)
			return nil
		},
	}))
	e.Use(echoMiddleware.Recover())

	origins := cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: len(origins) > 0 && origins[0] != "*",
	}))

	return e
}

// Register mounts every module under /api/v1 and returns the calendar
// service for the job worker.
func Register(e *echo.Echo, cfg *config.Config, stores Stores, infra Infra) calendarService.CalendarService {
	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler(infra.Pinger))

	private := v1.Group("/private")
	mw := middleware.NewMiddleware(cfg.Auth)
	v := validation.New()

	appointment.Init(private, mw, stores.Appointments, v)
	task.Init(private, mw, stores.Tasks, v)
	memberSvc := member.Init(private, mw, stores.Members)
	calendarSvc := calendar.Init(private, mw, calendar.Deps{
		Appointments: stores.Appointments,
		Tasks:        stores.Tasks,
		Members:      memberSvc,
		Cache:        infra.Cache,
		Jobs:         infra.Jobs,
		Uploader:     infra.Uploader,
		Validator:    v,
	})
	approval.Init(private, mw, stores.Appointments, stores.Tasks, calendarSvc, v)

	return calendarSvc
}

func healthHandler(ping func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := map[string]string{"status": "ok", "database": "skipped"}
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), constants.DefaultTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				logger.Error("Server:Health", "error", err)
				status["status"], status["database"] = "degraded", "down"
				return c.JSON(http.StatusServiceUnavailable, controller.NewSuccessResponse(http.StatusServiceUnavailable, status, "unhealthy"))
			}
			status["database"] = "up"
		}
		return c.JSON(http.StatusOK, controller.NewSuccessResponse(http.StatusOK, status, "healthy"))
	}
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !stdErrors.As(err, &he) {
		_ = controller.NewBaseController().ErrorResponse(c, err)
		return
	}

	if body, ok := he.Message.(*controller.ErrorResponse); ok {
		_ = c.JSON(he.Code, body)
		return
	}

	code := errors.ErrInternalServer
	switch he.Code {
	case http.StatusBadRequest:
		code = errors.ErrInvalidRequestData
	case http.StatusUnauthorized:
		code = errors.ErrUnauthorized
	case http.StatusForbidden:
		code = errors.ErrForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = errors.ErrNotFound
	}
	_ = c.JSON(he.Code, &controller.ErrorResponse{
		Status:    "error",
		Code:      code,
		Message:   fmt.Sprint(he.Message),
		Timestamp: time.Now(),
	})
}
