package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/core/domain"
)

func BuildCreateUserInput(req dto.CreateUserRequest) (domain.CreateUserInput, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 6 {
		return domain.CreateUserInput{}, ErrInvalidPayload
	}

	// Role defaults to member when omitted.
	role := domain.RoleMember
	if req.Role != nil {
		role = domain.Role(*req.Role)
	}

	return domain.CreateUserInput{
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Role:     role,
	}, nil
}

func BuildCredentials(req dto.SessionRequest) domain.Credentials {
	return domain.Credentials{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
	}
}
