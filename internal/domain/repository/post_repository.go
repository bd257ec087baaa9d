package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

// PostRepository persists blog posts.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Post, error)
	// Update applies patch only when ownerID still owns the post and reports
	// the number of rows changed.
	Update(ctx context.Context, id, ownerID int64, patch entity.PostPatch) (int64, error)
	// Delete removes the post together with its comments and likes.
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
}
