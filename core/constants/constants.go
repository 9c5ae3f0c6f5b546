package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 5 * time.Second

	ContextTokenData = "token_data"
	AuthCookieName   = "auth_token"

	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

const (
	RedisKeyMonthSummary = "calendar:month:"
	MonthSummaryTTL      = 10 * time.Minute
)

const (
	TaskTypeWarmMonthSummary = "calendar:warm_month"
	QueueDefault             = "default"
)
