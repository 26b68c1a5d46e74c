package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/GNaves/Tasks-API/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Insert(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type teamRepositoryMock struct {
	mock.Mock
}

func (m *teamRepositoryMock) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)

	var teams []domain.Team
	if value := args.Get(0); value != nil {
		teams = value.([]domain.Team)
	}
	return teams, args.Error(1)
}

func (m *teamRepositoryMock) FindByID(ctx context.Context, id string) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) Insert(ctx context.Context, team domain.Team) (domain.Team, error) {
	args := m.Called(ctx, team)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *teamRepositoryMock) AddMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(domain.TeamMember), args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus, changedBy string) (domain.Task, error) {
	args := m.Called(ctx, id, status, changedBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (domain.Task, error) {
	args := m.Called(ctx, id, priority)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
