package server

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"

	"team-scheduler/core/cache"
	"team-scheduler/core/config"
	"team-scheduler/core/constants"
	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/core/queue"
	"team-scheduler/core/storage"
	appointmentRepo "team-scheduler/modules/appointment/repository"
	memberRepo "team-scheduler/modules/member/repository"
	taskRepo "team-scheduler/modules/task/repository"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/redis/go-redis/v9"
)

// Run loads configuration, opens the database and optional Redis, job queue
// and object storage, serves HTTP, and blocks until a shutdown signal has
// been handled.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()

	db, err := database.InitDB(ctx, database.DatabaseConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return err
		}
	}

	operations := map[string]gfshutdown.Operation{
		"database": func(context.Context) error { return db.Close() },
	}
	infra := Infra{Pinger: db.PingContext}

	if cfg.Redis.Enabled {
		var client *redis.Client
		client, err = cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			_ = db.Close()
			return err
		}
		infra.Cache = cache.NewRedisCache(client, constants.RedisKeyMonthSummary, cfg.Redis.MonthSummaryTTL)
		operations["redis"] = func(context.Context) error { return client.Close() }
	}

	if cfg.Queue.Enabled {
		jobs := queue.NewClient(cfg.Redis)
		infra.Jobs = jobs
		operations["queue-client"] = func(context.Context) error { return jobs.Close() }
	}

	if cfg.Storage.Enabled() {
		infra.Uploader = storage.NewS3Uploader(cfg.Storage)
		logger.Info("Export storage enabled", "bucket", cfg.Storage.Bucket)
	}

	e := NewEcho(cfg)
	calendarSvc := Register(e, cfg, Stores{
		Appointments: appointmentRepo.NewAppointmentRepository(db),
		Tasks:        taskRepo.NewTaskRepository(db),
		Members:      memberRepo.NewMemberRepository(db),
	}, infra)

	if cfg.Queue.Enabled {
		worker := queue.NewWorker(cfg.Redis, cfg.Queue)
		worker.HandleWarmMonth(func(ctx context.Context, p queue.WarmMonthPayload) error {
			return calendarSvc.WarmMonth(ctx, p.MemberID, p.Month)
		})
		if err := worker.Start(); err != nil {
			_ = db.Close()
			return fmt.Errorf("start worker: %w", err)
		}
		operations["worker"] = func(context.Context) error {
			worker.Shutdown()
			return nil
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			logger.Error("Server:Start", "error", err)
		}
	}()
	operations["http"] = func(ctx context.Context) error { return e.Shutdown(ctx) }

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.Server.ShutdownTimeout, operations)
	if code := <-wait; code != 0 {
		return fmt.Errorf("shutdown finished with exit code %d", code)
	}
	logger.Info("Shutdown completed")
	return nil
}
