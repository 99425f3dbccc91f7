package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghive/blog-platform/internal/api/metrics"
	"github.com/bloghive/blog-platform/internal/core/domain"
	"github.com/bloghive/blog-platform/internal/core/ports"
)

// PostService implements post CRUD plus the like and comment interactions.
// Every successful mutation emits an activity event on the recorder.
type PostService struct {
	posts    ports.PostRepository
	activity ports.ActivityRepository
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	activity ports.ActivityRepository,
	recorder ports.ActivityRecorder,
	log zerolog.Logger,
) *PostService {
	return &PostService{posts: posts, activity: activity, recorder: recorder, log: log}
}

func (s *PostService) Create(ctx context.Context, actor string, in ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     in.Title,
		Content:   in.Content,
		Author:    actor,
		Comments:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("actor", actor).Msg("failed to create post")
		return nil, err
	}

	s.record(created.ID, domain.ActivityCreated, actor)
	metrics.PostMutationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("post_id", created.ID).Str("actor", actor).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Update(ctx context.Context, actor, id, title, content string) error {
	if err := s.posts.Update(ctx, id, title, content); err != nil {
		return err
	}
	s.record(id, domain.ActivityUpdated, actor)
	metrics.PostMutationsTotal.WithLabelValues("updated").Inc()
	return nil
}

func (s *PostService) Delete(ctx context.Context, actor, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.record(id, domain.ActivityDeleted, actor)
	metrics.PostMutationsTotal.WithLabelValues("deleted").Inc()
	return nil
}

// Like increments the counter atomically at the store, so two concurrent
// likes both land.
func (s *PostService) Like(ctx context.Context, actor, id string) error {
	if err := s.posts.Like(ctx, id); err != nil {
		return err
	}
	s.record(id, domain.ActivityLiked, actor)
	metrics.PostMutationsTotal.WithLabelValues("liked").Inc()
	return nil
}

// Comment appends to the post's comment list, preserving insertion order.
func (s *PostService) Comment(ctx context.Context, actor, id, comment string) error {
	if err := s.posts.AppendComment(ctx, id, comment); err != nil {
		return err
	}
	s.record(id, domain.ActivityCommented, actor)
	metrics.PostMutationsTotal.WithLabelValues("commented").Inc()
	return nil
}

func (s *PostService) Activity(ctx context.Context, id string) ([]domain.ActivityEvent, error) {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.activity.FindByPostID(ctx, id)
}

func (s *PostService) record(postID string, kind domain.ActivityKind, actor string) {
	s.recorder.Enqueue(domain.ActivityEvent{
		PostID:    postID,
		Kind:      kind,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
