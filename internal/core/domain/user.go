package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type Credentials struct {
	Email    string
	Password string
}
