package mapper

import (
	"team-scheduler/modules/task/dto"
	"team-scheduler/modules/task/entity"
)

func ToTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Content:      t.Content,
		StartAt:      t.StartAt,
		EndAt:        t.EndAt,
		DeadlineAt:   t.DeadlineAt,
		Status:       string(t.Status),
		CreatedByID:  t.CreatedByID,
		AssignedToID: t.AssignedToID,
		ApprovedByID: t.ApprovedByID,
		ApprovedAt:   t.ApprovedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func ToTaskResponses(items []entity.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(items))
	for i := range items {
		out[i] = *ToTaskResponse(&items[i])
	}
	return out
}
