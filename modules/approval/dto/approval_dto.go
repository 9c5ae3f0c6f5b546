package dto

import (
	appointmentDto "team-scheduler/modules/appointment/dto"
	taskDto "team-scheduler/modules/task/dto"
)

const (
	EntityAppointment = "appointment"
	EntityTask        = "task"
)

// TransitionRequest decides a pending appointment or task.
type TransitionRequest struct {
	Type   string `json:"type" validate:"required,oneof=appointment task"`
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=approved declined"`
}

// TransitionResponse carries the updated record under its type's key.
type TransitionResponse struct {
	Appointment *appointmentDto.AppointmentResponse `json:"appointment,omitempty"`
	Task        *taskDto.TaskResponse               `json:"task,omitempty"`
}
