package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(title) < 6 || utf8.RuneCountInString(description) < 6 {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
		AssignedTo:  req.AssignedTo,
		TeamID:      req.TeamID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
	}, nil
}
