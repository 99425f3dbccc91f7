package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

const activityCollection = "activity"

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	PostID    string    `bson:"post_id"`
	Kind      string    `bson:"kind"`
	Actor     string    `bson:"actor"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		PostID:    event.PostID,
		Kind:      string(event.Kind),
		Actor:     event.Actor,
		Timestamp: event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// FindByPostID returns a post's trail in chronological order.
func (r *ActivityRepository) FindByPostID(ctx context.Context, postID string) ([]domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cur.Close(ctx)

	events := []domain.ActivityEvent{}
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		events = append(events, domain.ActivityEvent{
			PostID:    ma.PostID,
			Kind:      domain.ActivityKind(ma.Kind),
			Actor:     ma.Actor,
			Timestamp: ma.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the post_id lookup index.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
