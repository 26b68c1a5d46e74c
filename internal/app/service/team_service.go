package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
)

type TeamService struct {
	teamRepository ports.TeamRepository
	userRepository ports.UserRepository
}

var _ ports.TeamService = (*TeamService)(nil)

func NewTeamService(teamRepository ports.TeamRepository, userRepository ports.UserRepository) *TeamService {
	return &TeamService{teamRepository: teamRepository, userRepository: userRepository}
}

func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepository.List(ctx)
}

func (s *TeamService) Create(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error) {
	team := domain.Team{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}

	return s.teamRepository.Insert(ctx, team)
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.teamRepository.Delete(ctx, id)
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID string) (domain.TeamMember, error) {
	if _, err := s.teamRepository.FindByID(ctx, teamID); err != nil {
		return domain.TeamMember{}, err
	}
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return domain.TeamMember{}, err
	}

	member := domain.TeamMember{
		ID:     uuid.NewString(),
		TeamID: teamID,
		UserID: userID,
	}

	return s.teamRepository.AddMember(ctx, member)
}
