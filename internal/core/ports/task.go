package ports

import (
	"context"

	"github.com/GNaves/Tasks-API/internal/core/domain"
)

type TaskRepository interface {
	// List returns every task with its team and status history attached.
	List(ctx context.Context) ([]domain.Task, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	// Insert verifies the assignee and the team inside one transaction
	// before persisting; it returns domain.ErrUserNotFound or
	// domain.ErrTeamNotFound when a reference is missing.
	Insert(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	// UpdateStatus locks the task row, refuses completed tasks with
	// domain.ErrTaskAlreadyCompleted and appends a history record in the
	// same transaction as the status change.
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus, changedBy string) (domain.Task, error)
	UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateByUser(ctx context.Context, id, actorID string, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateStatus(ctx context.Context, id, actorID string, status domain.TaskStatus) (domain.Task, error)
	UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}
