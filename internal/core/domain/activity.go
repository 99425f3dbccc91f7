package domain

import "time"

// ActivityKind classifies a post mutation.
type ActivityKind string

const (
	ActivityCreated   ActivityKind = "created"
	ActivityUpdated   ActivityKind = "updated"
	ActivityDeleted   ActivityKind = "deleted"
	ActivityLiked     ActivityKind = "liked"
	ActivityCommented ActivityKind = "commented"
)

// ActivityEvent records a single mutation applied to a post.
type ActivityEvent struct {
	PostID    string       `json:"post_id"`
	Kind      ActivityKind `json:"kind"`
	Actor     string       `json:"actor"`
	Timestamp time.Time    `json:"timestamp"`
}
