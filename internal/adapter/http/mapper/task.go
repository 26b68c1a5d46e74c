package mapper

import (
	"time"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssignedTo:  task.AssignedTo,
		TeamID:      task.TeamID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Team != nil {
		team := ToTeamItem(*task.Team)
		item.Team = &team
	}

	if len(task.History) > 0 {
		item.TaskHistory = make([]dto.TaskHistoryItem, 0, len(task.History))
		for _, h := range task.History {
			item.TaskHistory = append(item.TaskHistory, ToTaskHistoryItem(h))
		}
	}

	return item
}

func ToTaskHistoryItem(history domain.TaskHistory) dto.TaskHistoryItem {
	return dto.TaskHistoryItem{
		ID:        history.ID,
		TaskID:    history.TaskID,
		OldStatus: string(history.OldStatus),
		NewStatus: string(history.NewStatus),
		ChangedBy: history.ChangedBy,
		ChangedAt: history.ChangedAt.Format(time.RFC3339),
	}
}
