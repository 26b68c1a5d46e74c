package dto

// UserItem deliberately has no password field, the hash never leaves the
// server.
type UserItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=6"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin member"`
}

type SessionRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SessionResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
