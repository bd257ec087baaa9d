package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

// UserRepository defines the credential store operations.
type UserRepository interface {
	// Create inserts u and sets its ID and CreatedAt. A taken email yields ErrDuplicate.
	Create(ctx context.Context, u *entity.User) error
	// GetByID returns ErrNotFound when no user has the id.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
