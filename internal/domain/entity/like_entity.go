package entity

import "time"

// Like exists once per (PostID, UserID) pair.
type Like struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}
