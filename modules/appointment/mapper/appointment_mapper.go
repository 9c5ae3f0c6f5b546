package mapper

import (
	"team-scheduler/modules/appointment/dto"
	"team-scheduler/modules/appointment/entity"
)

func ToAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:           a.ID,
		Subject:      a.Subject,
		Content:      a.Content,
		StartAt:      a.StartAt,
		EndAt:        a.EndAt,
		Status:       string(a.Status),
		CreatedByID:  a.CreatedByID,
		MemberID:     a.MemberID,
		ApprovedByID: a.ApprovedByID,
		ApprovedAt:   a.ApprovedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func ToAppointmentResponses(items []entity.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, len(items))
	for i := range items {
		out[i] = *ToAppointmentResponse(&items[i])
	}
	return out
}
