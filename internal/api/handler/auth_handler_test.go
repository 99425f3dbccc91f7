package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
	resetErr  error
	redeemErr error
}

func (s *stubAuthService) Signup(_ context.Context, username, email, _ string) (*domain.User, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &domain.User{ID: "1", Username: username, Email: email}, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return "signed-access-token", nil
}

func (s *stubAuthService) RequestPasswordReset(context.Context, string) (string, error) {
	if s.resetErr != nil {
		return "", s.resetErr
	}
	return "signed-reset-token", nil
}

func (s *stubAuthService) CompletePasswordReset(context.Context, string, string) error {
	return s.redeemErr
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/signup",
		`{"username":"alice","email":"a@x.com","password":"pw1"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "pw1") {
		t.Fatalf("response leaks password: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/signup", `{"username":"alice"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrUserExists})
	c, rec := newAuthContext(t, http.MethodPost, "/signup",
		`{"username":"alice","email":"a@x.com","password":"pw1"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/login",
		`{"username":"alice","password":"pw1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected accessToken in response body")
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	for _, svcErr := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials} {
		h := NewAuthHandler(&stubAuthService{loginErr: svcErr})
		c, rec := newAuthContext(t, http.MethodPost, "/login",
			`{"username":"alice","password":"wrong"}`)

		if err := h.Login(c); err != nil {
			t.Fatalf("login: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", svcErr, rec.Code)
		}
	}
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{resetErr: domain.ErrUserNotFound})
	c, rec := newAuthContext(t, http.MethodPost, "/forgot-password", `{"email":"nope@x.com"}`)

	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_ForgotPassword_KnownEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/forgot-password", `{"email":"a@x.com"}`)

	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp forgotPasswordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ResetToken == "" {
		t.Fatalf("expected resetToken in response body")
	}
}

func TestAuthHandler_ResetPassword_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/reset-password", `{"newPassword":"pw2"}`)

	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_ResetPassword_BadToken(t *testing.T) {
	for _, svcErr := range []error{domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrTokenRedeemed} {
		h := NewAuthHandler(&stubAuthService{redeemErr: svcErr})
		c, rec := newAuthContext(t, http.MethodPost, "/reset-password", `{"newPassword":"pw2"}`)
		c.Request().Header.Set("token", "some-token")

		if err := h.ResetPassword(c); err != nil {
			t.Fatalf("reset password: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%v: expected 403, got %d", svcErr, rec.Code)
		}
	}
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/reset-password", `{"newPassword":"pw2"}`)
	c.Request().Header.Set("token", "valid-token")

	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
