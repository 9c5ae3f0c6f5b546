package entity

import "strconv"

// Member is a read-only projection of the identity provider's user table.
type Member struct {
	ID          int64    `db:"id"`
	Email       *string  `db:"email"`
	AgentCode   *string  `db:"agent_code"`
	Slug        *string  `db:"slug"`
	Departments []string `db:"-"`
}

type DepartmentLink struct {
	MemberID       int64  `db:"member_id"`
	DepartmentName string `db:"department_name"`
}

// Name is the agent code, else the slug, else nil.
func (m *Member) Name() *string {
	return firstNonNil(m.AgentCode, m.Slug)
}

// DisplayLabel resolves agent code, slug, email, then the numeric id. It is
// the same chain the member list is ordered by.
func DisplayLabel(m *Member) string {
	if v := firstNonNil(m.AgentCode, m.Slug, m.Email); v != nil {
		return *v
	}
	return strconv.FormatInt(m.ID, 10)
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
