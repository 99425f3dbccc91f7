package ports

import (
	"context"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

// CreatePostInput carries the fields a caller supplies for a new post.
type CreatePostInput struct {
	Title   string
	Content string
}

type PostService interface {
	Create(ctx context.Context, actor string, in CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, actor, id, title, content string) error
	Delete(ctx context.Context, actor, id string) error
	Like(ctx context.Context, actor, id string) error
	Comment(ctx context.Context, actor, id, comment string) error
	Activity(ctx context.Context, id string) ([]domain.ActivityEvent, error)
}
