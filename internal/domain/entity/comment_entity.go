package entity

import "time"

// Comment is append-only: never edited or removed except with its post.
type Comment struct {
	ID        int64     `json:"comment_id"`
	PostID    int64     `json:"blog_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
