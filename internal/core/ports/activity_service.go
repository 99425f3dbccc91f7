package ports

import (
	"context"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

// ActivityService persists a single activity event. Called by the queue
// workers, never directly by handlers.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRecorder is the enqueue side of the activity pipeline.
type ActivityRecorder interface {
	Enqueue(event domain.ActivityEvent)
}
