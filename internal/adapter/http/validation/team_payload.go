package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/core/domain"
)

func BuildCreateTeamInput(req dto.CreateTeamRequest) (domain.CreateTeamInput, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(name) < 3 || utf8.RuneCountInString(description) < 6 {
		return domain.CreateTeamInput{}, ErrInvalidPayload
	}

	return domain.CreateTeamInput{Name: name, Description: description}, nil
}
