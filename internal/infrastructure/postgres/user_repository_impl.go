package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

type UserRepository struct {
	store
}

func NewUserRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *UserRepository {
	return &UserRepository{store: newStore(pool, queryTimeout)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_data (name, email_id, password)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at
	`, u.Name, u.Email, u.PasswordHash)

	return translate(row.Scan(&u.ID, &u.CreatedAt))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, name, email_id, password, created_at
		FROM user_data
		WHERE user_id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
