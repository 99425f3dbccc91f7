package ports

import (
	"context"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
	// RequestPasswordReset issues a reset token for a known email.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	// CompletePasswordReset redeems a reset token and overwrites the
	// stored password hash for the email it carries.
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}
