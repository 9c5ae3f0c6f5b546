package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"team-scheduler/core/config"
	"team-scheduler/core/constants"
	"team-scheduler/core/logger"

	"github.com/hibiken/asynq"
)

// WarmMonthPayload asks the worker to recompute one member-month summary.
type WarmMonthPayload struct {
	MemberID int64  `json:"memberId"`
	Month    string `json:"month"` // YYYY-MM
}

type Enqueuer interface {
	EnqueueWarmMonth(ctx context.Context, memberID int64, month string) error
}

func NewWarmMonthTask(p WarmMonthPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskTypeWarmMonthSummary, payload,
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	), nil
}

func ParseWarmMonthPayload(t *asynq.Task) (WarmMonthPayload, error) {
	var p WarmMonthPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	if p.MemberID <= 0 || p.Month == "" {
		return p, fmt.Errorf("invalid %s payload: %w", t.Type(), asynq.SkipRetry)
	}
	return p, nil
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{client: asynq.NewClient(RedisOpt(cfg))}
}

func (c *Client) EnqueueWarmMonth(ctx context.Context, memberID int64, month string) error {
	task, err := NewWarmMonthTask(WarmMonthPayload{MemberID: memberID, Month: month})
	if err != nil {
		return err
	}

	// Each invalidation gets its own job. A job already running may have read
	// the store before the change that triggered this call.
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error("Queue:EnqueueWarmMonth", "member_id", memberID, "month", month, "error", err)
		return err
	}
	logger.Debug("Queue:EnqueueWarmMonth", "task_id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Noop drops every job; used when the queue is disabled.
type Noop struct{}

func (Noop) EnqueueWarmMonth(context.Context, int64, string) error { return nil }
