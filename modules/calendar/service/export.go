package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"team-scheduler/core/constants"
	"team-scheduler/core/errors"
	"team-scheduler/modules/calendar/dto"
	memberEntity "team-scheduler/modules/member/entity"

	"github.com/gosimple/slug"
)

// ExportKey is the object key of a member-month export.
func ExportKey(label string, memberID int64, month string) string {
	return fmt.Sprintf("exports/%s-%d/%s.json", slug.Make(label), memberID, month)
}

// ExportMonth writes the member's month summary to object storage as JSON
// and returns the object key.
func (s *calendarService) ExportMonth(ctx context.Context, memberID int64, date time.Time) (*dto.ExportResponse, *errors.AppError) {
	if s.uploader == nil {
		return nil, errors.NewAppError(errors.ErrServiceUnavailable, "Export storage is not configured", nil)
	}

	member, appErr := s.members.GetMember(ctx, memberID)
	if appErr != nil {
		return nil, appErr
	}

	summary, appErr := s.GetMonthSummary(ctx, memberID, date)
	if appErr != nil {
		return nil, appErr
	}

	month := date.Format(constants.MonthLayout)
	label := memberEntity.DisplayLabel(member)
	body, err := json.Marshal(dto.MonthExport{
		MemberID:     memberID,
		DisplayLabel: label,
		Month:        month,
		GeneratedAt:  s.now().UTC().Format(time.RFC3339),
		Summary:      summary,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to encode export", err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	key := ExportKey(label, memberID, month)
	if err := s.uploader.Put(ctx, key, "application/json", body); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to upload export", err)
	}
	return &dto.ExportResponse{Key: key, Month: month}, nil
}
