package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

// CommentRepository is append-only.
type CommentRepository interface {
	// Create returns ErrNotFound when the post does not exist.
	Create(ctx context.Context, c *entity.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error)
}
