package ports

import (
	"context"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

// ActivityRepository persists the per-post mutation trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	FindByPostID(ctx context.Context, postID string) ([]domain.ActivityEvent, error)
}
