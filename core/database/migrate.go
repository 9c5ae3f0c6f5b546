package database

import (
	"context"
	_ "embed"
	"fmt"

	"team-scheduler/core/logger"
)

//go:embed schema.sql
var schema string

// Migrate applies the idempotent schema. The user and department tables
// belong to the identity provider in production and are only created when
// missing.
func Migrate(ctx context.Context, db IDatabase) error {
	if err := db.ExecContext(ctx, schema); err != nil {
		logger.Error("Database:Migrate", "error", err)
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Info("Database schema applied")
	return nil
}
