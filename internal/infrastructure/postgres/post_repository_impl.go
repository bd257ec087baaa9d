package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

const postColumns = `blog_id, owner_user_id, title, content, created_at, updated_at`

type PostRepository struct {
	store
}

func NewPostRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PostRepository {
	return &PostRepository{store: newStore(pool, queryTimeout)}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO blogs_data (owner_user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING blog_id, created_at, updated_at
	`, p.OwnerID, p.Title, p.Content)

	return translate(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM blogs_data WHERE blog_id = $1`, id)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[entity.Post])
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM blogs_data ORDER BY blog_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[entity.Post])
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM blogs_data WHERE owner_user_id = $1 ORDER BY blog_id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[entity.Post])
}

func (r *PostRepository) Update(ctx context.Context, id, ownerID int64, patch entity.PostPatch) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE blogs_data
		SET title = COALESCE($3::text, title),
		    content = COALESCE($4::text, content),
		    updated_at = now()
		WHERE blog_id = $1 AND owner_user_id = $2
	`, id, ownerID, patch.Title, patch.Content)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var owner int64
		err := tx.QueryRow(ctx, `SELECT owner_user_id FROM blogs_data WHERE blog_id = $1 FOR UPDATE`, id).Scan(&owner)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && owner != ownerID) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM blog_likes WHERE blog_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM blog_comments WHERE blog_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM blogs_data WHERE blog_id = $1 AND owner_user_id = $2`, id, ownerID)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
