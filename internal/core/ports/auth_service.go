package ports

import (
	"context"

	"github.com/recordstack/records-api/internal/core/domain"
)

// AuthService issues and resolves bearer tokens.
type AuthService interface {
	// Authenticate checks email+password and returns the matching user.
	// Unknown account and wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// IssueToken produces a signed token whose subject is the user's email.
	IssueToken(subject string) (string, error)
	// CurrentUser verifies the token and resolves the embedded subject to a
	// stored user. Every failure mode yields ErrInvalidCredentials.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
