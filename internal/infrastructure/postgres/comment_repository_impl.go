package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

type CommentRepository struct {
	store
}

func NewCommentRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *CommentRepository {
	return &CommentRepository{store: newStore(pool, queryTimeout)}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO blog_comments (blog_id, user_id, comment)
		VALUES ($1, $2, $3)
		RETURNING comment_id, created_at
	`, c.PostID, c.UserID, c.Text)

	return translate(row.Scan(&c.ID, &c.CreatedAt))
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT comment_id, blog_id, user_id, comment, created_at
		FROM blog_comments
		WHERE blog_id = $1
		ORDER BY comment_id
	`, postID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[entity.Comment])
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
