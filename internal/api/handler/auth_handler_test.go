package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordstack/records-api/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	issueTokenFn   func(subject string) (string, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubAuthService) IssueToken(subject string) (string, error) {
	return s.issueTokenFn(subject)
}

func (s *stubAuthService) CurrentUser(context.Context, string) (*domain.User, error) {
	panic("not used")
}

func postForm(t *testing.T, path string, form url.Values) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestAuthHandler_Token_Success(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, email, password string) (*domain.User, error) {
			if email != "john@example.com" || password != "pw" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &domain.User{ID: 1, Email: email}, nil
		},
		issueTokenFn: func(subject string) (string, error) {
			if subject != "john@example.com" {
				t.Fatalf("token subject must be the email, got %q", subject)
			}
			return "signed-token", nil
		},
	}
	handler := NewAuthHandler(stub)

	rec, c := postForm(t, "/token", url.Values{
		"username": {"john@example.com"},
		"password": {"pw"},
	})
	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Token_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	rec, c := postForm(t, "/token", url.Values{
		"username": {"john@example.com"},
		"password": {"wrong"},
	})
	err := handler.Token(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("missing WWW-Authenticate challenge")
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("current_user", &domain.User{ID: 3, Name: "John", Email: "john@example.com"})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.ID != 3 || resp.Email != "john@example.com" {
		t.Fatalf("unexpected user: %+v", resp)
	}
}

func TestAuthHandler_Me_NoUserInContext(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
