package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

// newTestPool connects to TEST_DATABASE_URL and resets the schema.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, RunMigrations(dsn, "../../../db/migrations", helpers.NewDiscardLogger()))

	ctx := context.Background()
	pool, err := NewPool(ctx, dsn, 4, 1, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE blog_likes, blog_comments, blogs_data, user_data RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func TestRepositories_Integration(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	users := NewUserRepository(pool, time.Second)
	posts := NewPostRepository(pool, time.Second)
	comments := NewCommentRepository(pool, time.Second)
	likes := NewLikeRepository(pool, time.Second)

	alice := &entity.User{Name: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, alice))
	assert.NotZero(t, alice.ID)

	dup := &entity.User{Name: "alice2", Email: "alice@example.com", PasswordHash: "x"}
	assert.ErrorIs(t, users.Create(ctx, dup), repository.ErrDuplicate)

	_, err := users.GetByID(ctx, alice.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	post := &entity.Post{OwnerID: alice.ID, Title: "Hello", Content: "World"}
	require.NoError(t, posts.Create(ctx, post))

	title := "Hi"
	n, err := posts.Update(ctx, post.ID, alice.ID, entity.PostPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = posts.Update(ctx, post.ID, alice.ID+1, entity.PostPatch{Title: &title})
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Title)
	assert.Equal(t, "World", got.Content)

	require.NoError(t, likes.Create(ctx, post.ID, alice.ID))
	assert.ErrorIs(t, likes.Create(ctx, post.ID, alice.ID), repository.ErrDuplicate)
	count, err := likes.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: post.ID, UserID: alice.ID, Text: "first"}))
	list, err := comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err = posts.Delete(ctx, post.ID, alice.ID+1)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = posts.Delete(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	exists, err := likes.Exists(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	list, err = comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
