package service

import (
	"context"
	"fmt"
	"time"

	"team-scheduler/core/constants"
	"team-scheduler/core/errors"
	"team-scheduler/core/logger"
	"team-scheduler/modules/calendar/dto"
)

// monthKey is relative to the cache prefix constants.RedisKeyMonthSummary.
func monthKey(memberID int64, month string) string {
	return fmt.Sprintf("%d:%s", memberID, month)
}

// GetMonthSummary serves the member-month from cache when possible.
// Concurrent misses for the same key share one computation, and cache
// failures only cost a store round trip.
func (s *calendarService) GetMonthSummary(ctx context.Context, memberID int64, date time.Time) (dto.MonthSummary, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	key := monthKey(memberID, date.Format(constants.MonthLayout))

	var cached dto.MonthSummary
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("CalendarService:GetMonthSummary:CacheGet", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	// Callers waiting on the same key share this work, so it must not end
	// with whichever request started it.
	v, err, _ := s.flight.Do(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.DefaultRequestTimeout)
		defer cancel()

		summary, err := s.computeMonth(flightCtx, memberID, date)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(flightCtx, key, summary); err != nil {
			logger.Warn("CalendarService:GetMonthSummary:CacheSet", "key", key, "error", err)
		}
		return summary, nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load month summary", err)
	}
	return v.(dto.MonthSummary), nil
}

// InvalidateMonth drops the cached summary for the month containing at and
// schedules a rebuild. Failures are logged; the caller's operation already
// succeeded.
func (s *calendarService) InvalidateMonth(ctx context.Context, memberID int64, at time.Time) {
	month := at.Format(constants.MonthLayout)
	key := monthKey(memberID, month)

	s.flight.Forget(key)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Warn("CalendarService:InvalidateMonth:CacheDelete", "key", key, "error", err)
	}
	if err := s.jobs.EnqueueWarmMonth(ctx, memberID, month); err != nil {
		logger.Warn("CalendarService:InvalidateMonth:Enqueue", "key", key, "error", err)
	}
}

// WarmMonth recomputes and stores one member-month. month is YYYY-MM.
func (s *calendarService) WarmMonth(ctx context.Context, memberID int64, month string) error {
	date, err := time.Parse(constants.MonthLayout, month)
	if err != nil {
		return fmt.Errorf("parse month %q: %w", month, err)
	}

	summary, err := s.computeMonth(ctx, memberID, date)
	if err != nil {
		logger.Error("CalendarService:WarmMonth", "member_id", memberID, "month", month, "error", err)
		return err
	}
	if err := s.cache.Set(ctx, monthKey(memberID, month), summary); err != nil {
		return err
	}

	logger.Debug("CalendarService:WarmMonth", "member_id", memberID, "month", month, "days", len(summary))
	return nil
}
