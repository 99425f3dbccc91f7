package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a user-authored entry with social counters attached.
// Likes only ever grows; Comments preserves insertion order.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Likes     int64     `json:"likes"`
	Comments  []string  `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
