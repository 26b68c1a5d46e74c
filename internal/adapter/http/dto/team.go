package dto

type TeamItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type TeamMemberItem struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=6"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}
