package domain

import "errors"

// Sentinel errors shared across services and repositories. The API layer
// translates these into HTTP statuses in a single place.
var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrItemNotFound is returned when no item matches the given id.
	ErrItemNotFound = errors.New("item not found")
	// ErrUserExists is returned when a user with the same email already exists.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers every authentication failure: wrong
	// password, unknown account, bad signature, expired or malformed token.
	// Callers must not distinguish between these cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
