package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloghive/blog-platform/internal/api/metrics"
	"github.com/bloghive/blog-platform/internal/core/domain"
	"github.com/bloghive/blog-platform/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the ActivityService the queue workers drive.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single activity event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.ActivityErrorsTotal.Inc()
		return fmt.Errorf("persist activity: %w", err)
	}

	metrics.ActivityProcessedTotal.WithLabelValues(string(event.Kind)).Inc()
	s.log.Debug().
		Str("post_id", event.PostID).
		Str("kind", string(event.Kind)).
		Str("actor", event.Actor).
		Msg("activity recorded")
	return nil
}
