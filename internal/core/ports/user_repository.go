package ports

import (
	"context"

	"github.com/recordstack/records-api/internal/core/domain"
)

// UserRepository defines the persistence interface for User records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
