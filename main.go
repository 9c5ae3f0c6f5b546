package main

import (
	"os"

	"team-scheduler/core/logger"
	"team-scheduler/core/server"
)

// @title Team Scheduler API
// @version 1.0
// @description Appointments, tasks, approvals and calendar views for a small team

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
