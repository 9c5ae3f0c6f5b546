package repository

import (
	"context"
	"database/sql"

	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/modules/member/entity"
)

type MemberRepository struct {
	DB database.IDatabase
}

func NewMemberRepository(db database.IDatabase) *MemberRepository {
	return &MemberRepository{DB: db}
}

type MemberRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Member, error)
	ListDepartmentLinks(ctx context.Context) ([]entity.DepartmentLink, error)
	GetByID(ctx context.Context, id int64) (*entity.Member, error)
}

func (r *MemberRepository) List(ctx context.Context) ([]entity.Member, error) {
	query := `
		SELECT id, email, agent_code, slug
		FROM "user"
		ORDER BY COALESCE(agent_code, slug, email, id::text), id
	`

	members := []entity.Member{}
	if err := r.DB.SelectContext(ctx, &members, query); err != nil {
		logger.Error("MemberRepository:List", "error", err)
		return nil, err
	}
	return members, nil
}

// ListDepartmentLinks returns every membership row in insertion order.
func (r *MemberRepository) ListDepartmentLinks(ctx context.Context) ([]entity.DepartmentLink, error) {
	query := `
		SELECT cmd.member_id AS member_id, cd.name AS department_name
		FROM calendar_member_departments cmd
		JOIN calendar_departments cd ON cd.id = cmd.department_id
		ORDER BY cmd.id
	`

	links := []entity.DepartmentLink{}
	if err := r.DB.SelectContext(ctx, &links, query); err != nil {
		logger.Error("MemberRepository:ListDepartmentLinks", "error", err)
		return nil, err
	}
	return links, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*entity.Member, error) {
	query := `SELECT id, email, agent_code, slug FROM "user" WHERE id = $1`

	var member entity.Member
	if err := r.DB.GetContext(ctx, &member, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MemberRepository:GetByID", "error", err)
		return nil, err
	}
	return &member, nil
}
