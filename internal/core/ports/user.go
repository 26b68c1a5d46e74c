package ports

import (
	"context"

	"github.com/GNaves/Tasks-API/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
}

type SessionService interface {
	// Authenticate returns a signed token and the matching user, or
	// domain.ErrInvalidCredentials for both unknown emails and wrong
	// passwords.
	Authenticate(ctx context.Context, creds domain.Credentials) (string, domain.User, error)
}
