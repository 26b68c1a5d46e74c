package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	AssignedTo  string
	TeamID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Team        *Team
	History     []TaskHistory
}

// TaskHistory records a single accepted status transition. Rows are
// append-only and written in the same transaction as the status update.
type TaskHistory struct {
	ID        string
	TaskID    string
	OldStatus TaskStatus
	NewStatus TaskStatus
	ChangedBy string
	ChangedAt time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	TeamID      string
}

type UpdateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
}
