package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrEmailTaken           = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrNotTaskOwner         = errors.New("task assigned to another user")
	ErrTeamHasOpenTasks     = errors.New("team has open tasks")
)
