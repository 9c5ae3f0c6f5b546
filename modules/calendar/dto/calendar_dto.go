package dto

import (
	appointmentDto "team-scheduler/modules/appointment/dto"
	taskDto "team-scheduler/modules/task/dto"
)

const (
	ViewDay   = "day"
	ViewMonth = "month"
)

// CalendarQuery is bound from the query string of the calendar endpoints.
type CalendarQuery struct {
	MemberID string `query:"memberId" validate:"required"`
	Date     string `query:"date" validate:"required,datetime=2006-01-02"`
	View     string `query:"view" validate:"omitempty,oneof=day month"`
}

type DayView struct {
	Appointments        []appointmentDto.AppointmentResponse `json:"appointments"`
	Tasks               []taskDto.TaskResponse               `json:"tasks"`
	PendingAppointments []appointmentDto.AppointmentResponse `json:"pendingAppointments"`
	PendingTasks        []taskDto.TaskResponse               `json:"pendingTasks"`
}

type DayCount struct {
	Appointments int `json:"appointments"`
	Tasks        int `json:"tasks"`
}

// MonthSummary maps a YYYY-MM-DD date to its approved counts. A missing
// date means zero of both.
type MonthSummary map[string]DayCount

type MonthSummaryResponse struct {
	Summary MonthSummary `json:"summary"`
}

// MonthExport is the object written to storage by an export.
type MonthExport struct {
	MemberID     int64        `json:"memberId"`
	DisplayLabel string       `json:"displayLabel"`
	Month        string       `json:"month"`
	GeneratedAt  string       `json:"generatedAt"`
	Summary      MonthSummary `json:"summary"`
}

type ExportResponse struct {
	Key   string `json:"key"`
	Month string `json:"month"`
}
