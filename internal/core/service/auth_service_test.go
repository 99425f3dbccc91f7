package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bloghive/blog-platform/internal/core/domain"
	authinfra "github.com/bloghive/blog-platform/internal/infrastructure/auth"
)

const (
	testAccessSecret = "access-secret"
	testResetSecret  = "reset-secret"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	copy.ID = user.Username
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, email, hash string) (int64, error) {
	var matched int64
	for _, u := range r.users {
		if u.Email == email {
			u.PasswordHash = hash
			matched++
		}
	}
	return matched, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

type stubResetStore struct {
	redeemed map[string]bool
}

func newStubResetStore() *stubResetStore {
	return &stubResetStore{redeemed: make(map[string]bool)}
}

func (s *stubResetStore) IsRedeemed(_ context.Context, token string) (bool, error) {
	return s.redeemed[token], nil
}

func (s *stubResetStore) MarkRedeemed(_ context.Context, token string) error {
	s.redeemed[token] = true
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *stubResetStore) {
	t.Helper()
	tokens, err := authinfra.NewJWTService(testAccessSecret, testResetSecret)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	repo := newStubUserRepo()
	resets := newStubResetStore()
	svc := NewAuthService(repo, authinfra.NewBcryptHasher(), tokens, resets, zerolog.Nop())
	return svc, repo, resets
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	user, err := svc.Signup(context.Background(), "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed, got %q", user.PasswordHash)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Signup(context.Background(), "", "a@x.com", "pw1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Signup(context.Background(), "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "alice", "other@x.com", "pw2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Signup(context.Background(), "alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty access token")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testAccessSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username claim alice, got %v", claims["username"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _ = svc.Signup(context.Background(), "alice", "a@x.com", "pw1")
	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.RequestPasswordReset(context.Background(), "nope@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _ = svc.Signup(ctx, "alice", "a@x.com", "pw1")

	token, err := svc.RequestPasswordReset(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty reset token")
	}

	if err := svc.CompletePasswordReset(ctx, token, "pw2"); err != nil {
		t.Fatalf("complete reset: %v", err)
	}

	if _, err := svc.Login(ctx, "alice", "pw1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password should fail, got %v", err)
	}
	if _, err := svc.Login(ctx, "alice", "pw2"); err != nil {
		t.Fatalf("new password should succeed: %v", err)
	}
}

func TestAuthService_PasswordReset_SingleUse(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _ = svc.Signup(ctx, "alice", "a@x.com", "pw1")
	token, _ := svc.RequestPasswordReset(ctx, "a@x.com")

	if err := svc.CompletePasswordReset(ctx, token, "pw2"); err != nil {
		t.Fatalf("first redemption: %v", err)
	}
	if err := svc.CompletePasswordReset(ctx, token, "pw3"); !errors.Is(err, domain.ErrTokenRedeemed) {
		t.Fatalf("expected ErrTokenRedeemed on replay, got %v", err)
	}
}

func TestAuthService_PasswordReset_ExpiredToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _ = svc.Signup(ctx, "alice", "a@x.com", "pw1")

	expired := signResetToken(t, "a@x.com", time.Now().Add(-time.Minute))
	if err := svc.CompletePasswordReset(ctx, expired, "pw2"); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_PasswordReset_AccessTokenRejected(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _ = svc.Signup(ctx, "alice", "a@x.com", "pw1")
	accessToken, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// An access token must not redeem a password reset.
	if err := svc.CompletePasswordReset(ctx, accessToken, "pw2"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func signResetToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte(testResetSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
