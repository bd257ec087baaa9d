package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

type LikeRepository struct {
	store
}

func NewLikeRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *LikeRepository {
	return &LikeRepository{store: newStore(pool, queryTimeout)}
}

func (r *LikeRepository) Exists(ctx context.Context, postID, userID int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM blog_likes WHERE blog_id = $1 AND user_id = $2)
	`, postID, userID).Scan(&exists)
	return exists, err
}

// Create relies on the (blog_id, user_id) primary key so concurrent likes cannot both land.
func (r *LikeRepository) Create(ctx context.Context, postID, userID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO blog_likes (blog_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (blog_id, user_id) DO NOTHING
	`, postID, userID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrDuplicate
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, postID, userID int64) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *LikeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM blog_likes WHERE blog_id = $1`, postID).Scan(&n)
	return n, err
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
