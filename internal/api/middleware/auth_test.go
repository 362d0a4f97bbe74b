package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordstack/records-api/internal/core/domain"
)

type stubAuthService struct {
	currentUserFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) IssueToken(string) (string, error) {
	panic("not used")
}

func (s *stubAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.currentUserFn(ctx, token)
}

func invoke(t *testing.T, authHeader string, svc *stubAuthService) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(svc)(next)(c)
	return rec, c, err
}

func expectUnauthorized(t *testing.T, rec *httptest.ResponseRecorder, err error) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != "could not validate credentials" {
		t.Fatalf("message must stay generic, got %v", he.Message)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("missing WWW-Authenticate challenge")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := &stubAuthService{currentUserFn: func(context.Context, string) (*domain.User, error) {
		t.Fatalf("service must not be called without a header")
		return nil, nil
	}}
	rec, _, err := invoke(t, "", svc)
	expectUnauthorized(t, rec, err)
}

func TestAuth_WrongScheme(t *testing.T) {
	svc := &stubAuthService{currentUserFn: func(context.Context, string) (*domain.User, error) {
		t.Fatalf("service must not be called for a non-bearer scheme")
		return nil, nil
	}}
	rec, _, err := invoke(t, "Basic dXNlcjpwdw==", svc)
	expectUnauthorized(t, rec, err)
}

func TestAuth_InvalidToken(t *testing.T) {
	svc := &stubAuthService{currentUserFn: func(_ context.Context, token string) (*domain.User, error) {
		if token != "bad-token" {
			t.Fatalf("unexpected token: %q", token)
		}
		return nil, domain.ErrInvalidCredentials
	}}
	rec, _, err := invoke(t, "Bearer bad-token", svc)
	expectUnauthorized(t, rec, err)
}

func TestAuth_Success(t *testing.T) {
	want := &domain.User{ID: 1, Email: "alice@example.com"}
	svc := &stubAuthService{currentUserFn: func(_ context.Context, token string) (*domain.User, error) {
		if token != "good-token" {
			t.Fatalf("unexpected token: %q", token)
		}
		return want, nil
	}}

	rec, c, err := invoke(t, "Bearer good-token", svc)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got, _ := c.Get(UserContextKey()).(*domain.User)
	if got != want {
		t.Fatalf("user not injected into context")
	}
}

func TestAuth_SchemeCaseInsensitive(t *testing.T) {
	svc := &stubAuthService{currentUserFn: func(context.Context, string) (*domain.User, error) {
		return &domain.User{ID: 1}, nil
	}}
	_, _, err := invoke(t, "bearer some-token", svc)
	if err != nil {
		t.Fatalf("lowercase scheme must be accepted, got %v", err)
	}
}
