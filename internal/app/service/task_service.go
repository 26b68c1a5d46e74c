package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.List(ctx)
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
		Priority:    domain.TaskPriorityLow,
		AssignedTo:  input.AssignedTo,
		TeamID:      input.TeamID,
	}

	return s.taskRepository.Insert(ctx, task)
}

// UpdateByUser lets the assignee edit their own task. It never touches the
// status history, that is reserved for the dedicated status endpoint.
func (s *TaskService) UpdateByUser(ctx context.Context, id, actorID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if task.AssignedTo != actorID {
		return domain.Task{}, domain.ErrNotTaskOwner
	}

	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) UpdateStatus(ctx context.Context, id, actorID string, status domain.TaskStatus) (domain.Task, error) {
	return s.taskRepository.UpdateStatus(ctx, id, status, actorID)
}

func (s *TaskService) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (domain.Task, error) {
	return s.taskRepository.UpdatePriority(ctx, id, priority)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepository.Delete(ctx, id)
}
