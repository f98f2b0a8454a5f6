package ports

import (
	"context"

	"github.com/pollyapp/polly/internal/core/domain"
)

// AuthService is the identity capability the rest of the system depends
// on: handlers resolve a bearer token to a user id through VerifyToken
// and pass only the resolved id down to the core services.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(token string) (int64, error)
}
