package repository

import (
	"context"
)

// LikeRepository keys likes by the (postID, userID) pair.
type LikeRepository interface {
	Exists(ctx context.Context, postID, userID int64) (bool, error)
	// Create returns ErrDuplicate when the pair already exists and ErrNotFound
	// when the post does not.
	Create(ctx context.Context, postID, userID int64) error
	// Delete reports how many rows were removed (0 or 1).
	Delete(ctx context.Context, postID, userID int64) (int64, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}
