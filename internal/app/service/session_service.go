package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/GNaves/Tasks-API/internal/auth"
	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
)

type SessionService struct {
	userRepository ports.UserRepository
	tokens         *auth.TokenManager
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(userRepository ports.UserRepository, tokens *auth.TokenManager) *SessionService {
	return &SessionService{userRepository: userRepository, tokens: tokens}
}

// Authenticate hides whether the email or the password was wrong: both
// cases surface as domain.ErrInvalidCredentials.
func (s *SessionService) Authenticate(ctx context.Context, creds domain.Credentials) (string, domain.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, creds.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return "", domain.User{}, err
	}

	return token, user, nil
}
