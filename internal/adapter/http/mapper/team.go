package mapper

import (
	"time"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/core/domain"
)

func ToTeamItems(teams []domain.Team) []dto.TeamItem {
	items := make([]dto.TeamItem, 0, len(teams))
	for _, team := range teams {
		items = append(items, ToTeamItem(team))
	}
	return items
}

func ToTeamItem(team domain.Team) dto.TeamItem {
	return dto.TeamItem{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTeamMemberItem(member domain.TeamMember) dto.TeamMemberItem {
	return dto.TeamMemberItem{
		ID:        member.ID,
		TeamID:    member.TeamID,
		UserID:    member.UserID,
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
	}
}
