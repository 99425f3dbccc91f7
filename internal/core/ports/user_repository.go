package ports

import (
	"context"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdatePasswordHash replaces the stored hash for the account owning
	// email and reports how many documents matched.
	UpdatePasswordHash(ctx context.Context, email, hash string) (int64, error)
	List(ctx context.Context) ([]domain.User, error)
}
