package ports

import (
	"context"

	"github.com/GNaves/Tasks-API/internal/core/domain"
)

type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
	FindByID(ctx context.Context, id string) (domain.Team, error)
	Insert(ctx context.Context, team domain.Team) (domain.Team, error)
	// Delete refuses with domain.ErrTeamHasOpenTasks while any task still
	// references the team; the check and the delete share one transaction.
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
}

type TeamService interface {
	List(ctx context.Context) ([]domain.Team, error)
	Create(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, teamID, userID string) (domain.TeamMember, error)
}
