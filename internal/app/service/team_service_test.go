package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GNaves/Tasks-API/internal/app/service"
	"github.com/GNaves/Tasks-API/internal/core/domain"
)

func TestTeamService_AddMember_Success(t *testing.T) {
	teamRepo := new(teamRepositoryMock)
	userRepo := new(userRepositoryMock)
	teamRepo.On("FindByID", mock.Anything, "team-1").Return(domain.Team{ID: "team-1"}, nil).Once()
	userRepo.On("FindByID", mock.Anything, "user-1").Return(domain.User{ID: "user-1"}, nil).Once()
	teamRepo.On("AddMember", mock.Anything, mock.MatchedBy(func(member domain.TeamMember) bool {
		return member.ID != "" && member.TeamID == "team-1" && member.UserID == "user-1"
	})).Return(domain.TeamMember{ID: "member-1", TeamID: "team-1", UserID: "user-1"}, nil).Once()

	svc := service.NewTeamService(teamRepo, userRepo)

	member, err := svc.AddMember(context.Background(), "team-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, "member-1", member.ID)
	teamRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestTeamService_AddMember_TeamNotFound(t *testing.T) {
	teamRepo := new(teamRepositoryMock)
	userRepo := new(userRepositoryMock)
	teamRepo.On("FindByID", mock.Anything, "team-404").Return(domain.Team{}, domain.ErrTeamNotFound).Once()

	svc := service.NewTeamService(teamRepo, userRepo)

	_, err := svc.AddMember(context.Background(), "team-404", "user-1")
	require.ErrorIs(t, err, domain.ErrTeamNotFound)
	teamRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestTeamService_AddMember_UserNotFound(t *testing.T) {
	teamRepo := new(teamRepositoryMock)
	userRepo := new(userRepositoryMock)
	teamRepo.On("FindByID", mock.Anything, "team-1").Return(domain.Team{ID: "team-1"}, nil).Once()
	userRepo.On("FindByID", mock.Anything, "user-404").Return(domain.User{}, domain.ErrUserNotFound).Once()

	svc := service.NewTeamService(teamRepo, userRepo)

	_, err := svc.AddMember(context.Background(), "team-1", "user-404")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	teamRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestTeamService_Create_AssignsID(t *testing.T) {
	teamRepo := new(teamRepositoryMock)
	userRepo := new(userRepositoryMock)
	teamRepo.On("Insert", mock.Anything, mock.MatchedBy(func(team domain.Team) bool {
		return team.ID != "" && team.Name == "Frontend Team"
	})).Return(domain.Team{ID: "team-1", Name: "Frontend Team"}, nil).Once()

	svc := service.NewTeamService(teamRepo, userRepo)

	team, err := svc.Create(context.Background(), domain.CreateTeamInput{
		Name:        "Frontend Team",
		Description: "Frontend development team",
	})
	require.NoError(t, err)
	require.Equal(t, "team-1", team.ID)
	teamRepo.AssertExpectations(t)
}
