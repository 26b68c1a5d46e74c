package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/GNaves/Tasks-API/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateByUser(ctx context.Context, id, actorID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, actorID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateStatus(ctx context.Context, id, actorID string, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, id, actorID, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (domain.Task, error) {
	args := m.Called(ctx, id, priority)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type teamServiceMock struct {
	mock.Mock
}

func (m *teamServiceMock) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)

	var teams []domain.Team
	if value := args.Get(0); value != nil {
		teams = value.([]domain.Team)
	}
	return teams, args.Error(1)
}

func (m *teamServiceMock) Create(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *teamServiceMock) AddMember(ctx context.Context, teamID, userID string) (domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Get(0).(domain.TeamMember), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

type sessionServiceMock struct {
	mock.Mock
}

func (m *sessionServiceMock) Authenticate(ctx context.Context, creds domain.Credentials) (string, domain.User, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Get(1).(domain.User), args.Error(2)
}
