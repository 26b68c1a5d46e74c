package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	bcryptCost     int
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(userRepository ports.UserRepository, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{userRepository: userRepository, bcryptCost: bcryptCost}
}

func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	taken, err := s.userRepository.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	return s.userRepository.Insert(ctx, user)
}
