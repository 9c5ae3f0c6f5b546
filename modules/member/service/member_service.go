package service

import (
	"context"

	"team-scheduler/core/constants"
	"team-scheduler/core/errors"
	"team-scheduler/modules/member/dto"
	"team-scheduler/modules/member/entity"
	"team-scheduler/modules/member/mapper"
	"team-scheduler/modules/member/repository"
)

type MemberService struct {
	repo repository.MemberRepositoryInterface
}

type MemberServiceInterface interface {
	ListMembers(ctx context.Context) ([]dto.MemberResponse, *errors.AppError)
	GetMember(ctx context.Context, id int64) (*entity.Member, *errors.AppError)
}

func NewMemberService(repo repository.MemberRepositoryInterface) *MemberService {
	return &MemberService{repo: repo}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]dto.MemberResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list members", err)
	}
	links, err := s.repo.ListDepartmentLinks(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list departments", err)
	}
	mapper.GroupDepartments(members, links)

	out := make([]dto.MemberResponse, len(members))
	for i := range members {
		out[i] = mapper.ToMemberResponse(&members[i])
	}
	return out, nil
}

// GetMember returns ErrNotFound for an unknown id.
func (s *MemberService) GetMember(ctx context.Context, id int64) (*entity.Member, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get member", err)
	}
	if member == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Member not found", nil)
	}
	return member, nil
}
