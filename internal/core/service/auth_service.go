package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/recordstack/records-api/internal/core/domain"
	"github.com/recordstack/records-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// AuthService implements password verification and bearer token handling.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	method    jwt.SigningMethod
	tokenTTL  time.Duration
}

// NewAuthService builds an AuthService. algorithm names the JWT signing
// method ("HS256" and friends); unknown names fall back to HS256.
func NewAuthService(users ports.UserRepository, jwtSecret, algorithm string, tokenTTL time.Duration) *AuthService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, method: method, tokenTTL: tokenTTL}
}

// HashPassword returns the bcrypt hash of a plaintext password. The hash is
// salted, so repeated calls with the same input produce different values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain hashes to hash. A malformed hash is
// treated as a mismatch, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Authenticate resolves email+password to a stored user. Unknown account and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !CheckPassword(password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs a token carrying subject and an absolute expiry.
func (s *AuthService) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(s.method, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// CurrentUser verifies the token and looks up the user named by its subject.
// Bad signature, expiry, missing subject and unknown user all collapse into
// ErrInvalidCredentials so the caller cannot tell which check failed.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
