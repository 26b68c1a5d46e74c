package dto

type TaskItem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Priority    string            `json:"priority"`
	AssignedTo  string            `json:"assignedTo"`
	TeamID      string            `json:"teamId"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
	TaskHistory []TaskHistoryItem `json:"taskHistory,omitempty"`
	Team        *TeamItem         `json:"team,omitempty"`
}

type TaskHistoryItem struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	ChangedBy string `json:"changedBy"`
	ChangedAt string `json:"changedAt"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=6"`
	Description string `json:"description" binding:"required,min=6"`
	AssignedTo  string `json:"assigned_to" binding:"required,uuid"`
	TeamID      string `json:"team_id" binding:"required,uuid"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=pending inProgress completed"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending inProgress completed"`
}

type UpdateTaskPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=low medium high"`
}
