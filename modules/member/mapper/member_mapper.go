package mapper

import (
	"team-scheduler/modules/member/dto"
	"team-scheduler/modules/member/entity"
)

func ToMemberResponse(m *entity.Member) dto.MemberResponse {
	departments := m.Departments
	if departments == nil {
		departments = []string{}
	}
	return dto.MemberResponse{
		ID:           m.ID,
		Name:         m.Name(),
		DisplayLabel: entity.DisplayLabel(m),
		Email:        m.Email,
		Departments:  departments,
	}
}

// GroupDepartments attaches department names to members, keeping the order
// of links.
func GroupDepartments(members []entity.Member, links []entity.DepartmentLink) {
	byMember := make(map[int64][]string, len(members))
	for _, link := range links {
		byMember[link.MemberID] = append(byMember[link.MemberID], link.DepartmentName)
	}
	for i := range members {
		members[i].Departments = byMember[members[i].ID]
	}
}
