package ports

import (
	"context"

	"github.com/recordstack/records-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when registering a user.
// Password is the plaintext credential; the service hashes it before storage.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService exposes user record operations.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
}
