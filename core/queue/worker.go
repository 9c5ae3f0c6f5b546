package queue

import (
	"context"
	"fmt"

	"team-scheduler/core/config"
	"team-scheduler/core/constants"
	"team-scheduler/core/logger"

	"github.com/hibiken/asynq"
)

type WarmMonthHandler func(ctx context.Context, p WarmMonthPayload) error

type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *Worker {
	srv := asynq.NewServer(RedisOpt(redisCfg), asynq.Config{
		Concurrency: queueCfg.Concurrency,
		Queues:      map[string]int{constants.QueueDefault: 1},
		Logger:      asynqLogger{},
	})
	return &Worker{srv: srv, mux: NewMux(nil)}
}

// NewMux routes job types to handlers. A nil handler leaves the type
// unregistered.
func NewMux(warm WarmMonthHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	if warm != nil {
		registerWarmMonth(mux, warm)
	}
	return mux
}

func registerWarmMonth(mux *asynq.ServeMux, fn WarmMonthHandler) {
	mux.HandleFunc(constants.TaskTypeWarmMonthSummary, func(ctx context.Context, t *asynq.Task) error {
		p, err := ParseWarmMonthPayload(t)
		if err != nil {
			logger.Warn("Worker:WarmMonth", "error", err)
			return err
		}
		return fn(ctx, p)
	})
}

func (w *Worker) HandleWarmMonth(fn WarmMonthHandler) {
	registerWarmMonth(w.mux, fn)
}

func (w *Worker) Start() error {
	logger.Info("Starting job worker")
	return w.srv.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug(fmt.Sprint(args...), "component", "asynq") }
func (asynqLogger) Info(args ...any)  { logger.Info(fmt.Sprint(args...), "component", "asynq") }
func (asynqLogger) Warn(args ...any)  { logger.Warn(fmt.Sprint(args...), "component", "asynq") }
func (asynqLogger) Error(args ...any) { logger.Error(fmt.Sprint(args...), "component", "asynq") }
func (asynqLogger) Fatal(args ...any) { logger.Error(fmt.Sprint(args...), "component", "asynq", "fatal", true) }
