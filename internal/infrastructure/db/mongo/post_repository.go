package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghive/blog-platform/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	Likes     int64              `bson:"likes"`
	Comments  []string           `bson:"comments"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mp *mongoPost) toDomain() *domain.Post {
	comments := mp.Comments
	if comments == nil {
		comments = []string{}
	}
	return &domain.Post{
		ID:        mp.ID.Hex(),
		Title:     mp.Title,
		Content:   mp.Content,
		Author:    mp.Author,
		Likes:     mp.Likes,
		Comments:  comments,
		CreatedAt: mp.CreatedAt,
		UpdatedAt: mp.UpdatedAt,
	}
}

// postID parses a hex object id. An unparsable id maps to ErrPostNotFound
// so a garbage path parameter reads as a 404, not a 500.
func postID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrPostNotFound
	}
	return oid, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		Likes:     post.Likes,
		Comments:  post.Comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := postID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id, title, content string) error {
	oid, err := postID(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"title":      title,
		"content":    content,
		"updated_at": time.Now().UTC(),
	}}
	return r.updateOne(ctx, oid, update)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := postID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// Like increments the counter server-side. $inc keeps concurrent likes from
// losing updates, unlike a read-modify-write.
func (r *PostRepository) Like(ctx context.Context, id string) error {
	oid, err := postID(id)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, oid, bson.M{
		"$inc": bson.M{"likes": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
}

// AppendComment pushes onto the comment array server-side, preserving order
// under concurrency.
func (r *PostRepository) AppendComment(ctx context.Context, id, comment string) error {
	oid, err := postID(id)
	if err != nil {
		return err
	}
	return r.updateOne(ctx, oid, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *PostRepository) updateOne(ctx context.Context, oid primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
