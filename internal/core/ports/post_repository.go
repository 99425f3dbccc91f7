package ports

import (
	"context"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

// PostRepository defines the persistence contract for posts.
// Like and AppendComment must be applied atomically at the store so two
// concurrent calls never lose an update.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
	AppendComment(ctx context.Context, id, comment string) error
}
