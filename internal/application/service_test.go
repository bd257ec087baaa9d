package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog-api/pkg/mailer"
	"github.com/oksasatya/go-ddd-blog-api/pkg/mailer/templates"
)

type fixture struct {
	store  *memory.Store
	auth   *AuthService
	blogs  *BlogService
	social *SocialService
	tokens *helpers.JWTManager
}

func newFixture(t *testing.T, notifier CommentNotifier) *fixture {
	t.Helper()
	store := memory.NewStore()
	logger := helpers.NewDiscardLogger()
	tokens, err := helpers.NewJWTManager("service_test_secret_value", 2*time.Hour)
	require.NoError(t, err)

	f := &fixture{store: store, tokens: tokens}
	f.auth = NewAuthService(store.Users(), helpers.NewPasswordHasher(bcrypt.MinCost), tokens, logger)
	f.blogs = NewBlogService(store.Posts(), store.Likes(), logger, true)
	f.social = NewSocialService(store.Posts(), store.Comments(), store.Likes(), store.Users(), notifier, logger, true)
	return f
}

func (f *fixture) register(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.auth.Register(context.Background(), name, name+"@example.com", "pw-"+name)
	require.NoError(t, err)
	return id
}

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	a, err := f.auth.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	b, err := f.auth.Register(ctx, "Bob", "bob@example.com", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	stored, err := f.store.Users().GetByID(ctx, a)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))

	cases := []struct{ name, email, password string }{
		{"", "x@example.com", "pw"},
		{"X", "", "pw"},
		{"X", "x@example.com", ""},
		{"   ", "x@example.com", "pw"},
	}
	for _, tc := range cases {
		_, err := f.auth.Register(ctx, tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrValidation)
	}

	_, err = f.auth.Register(ctx, "Alice2", "ALICE@example.com", "secret")
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	id := f.register(t, "alice")

	s, err := f.auth.Login(ctx, id, "pw-alice")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), s.ExpiresAt, time.Minute)

	got, err := f.tokens.Verify(s.Token)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = f.auth.Login(ctx, id, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, id+100, "pw-alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.auth.Login(ctx, 0, "pw-alice")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBlogService_CreateAndList(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")

	_, err := f.blogs.ListAll(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.blogs.Create(ctx, alice, "", "content")
	assert.ErrorIs(t, err, ErrValidation)

	p1, err := f.blogs.Create(ctx, alice, "first", "hello")
	require.NoError(t, err)
	p2, err := f.blogs.Create(ctx, alice, "second", "world")
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)

	all, err := f.blogs.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.blogs.ListMine(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, alice, p.OwnerID)
	}

	_, err = f.blogs.ListMine(ctx, bob)
	assert.ErrorIs(t, err, ErrNotFound)

	f.blogs.EmptyAsNotFound = false
	none, err := f.blogs.ListMine(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBlogService_UpdateOwnership(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")
	id, err := f.blogs.Create(ctx, alice, "title", "content")
	require.NoError(t, err)

	newTitle := "changed"
	err = f.blogs.Update(ctx, id, bob, UpdatePostInput{Title: &newTitle})
	assert.ErrorIs(t, err, ErrForbidden)

	p, err := f.blogs.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "title", p.Title)

	empty := ""
	err = f.blogs.Update(ctx, id, alice, UpdatePostInput{Title: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, f.blogs.Update(ctx, id, alice, UpdatePostInput{Title: &newTitle}))
	p, err = f.blogs.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "changed", p.Title)
	assert.Equal(t, "content", p.Content)

	err = f.blogs.Update(ctx, id+10, alice, UpdatePostInput{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotFound)
}

// stalePosts serves a fixed post from GetByID while the backing store may
// already have lost it.
type stalePosts struct {
	repo.PostRepository
	post    entity.Post
	updated int64
}

func (s *stalePosts) GetByID(context.Context, int64) (*entity.Post, error) {
	p := s.post
	return &p, nil
}

func (s *stalePosts) Update(context.Context, int64, int64, entity.PostPatch) (int64, error) {
	return s.updated, nil
}

func TestBlogService_UpdateNoRowsChanged(t *testing.T) {
	posts := &stalePosts{post: entity.Post{ID: 9, OwnerID: 3, Title: "t", Content: "c"}}
	blogs := NewBlogService(posts, memory.NewStore().Likes(), helpers.NewDiscardLogger(), false)

	title := "changed"
	err := blogs.Update(context.Background(), 9, 3, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, ErrUpdateFailed)

	posts.updated = 1
	assert.NoError(t, blogs.Update(context.Background(), 9, 3, UpdatePostInput{Title: &title}))
}

func TestSocialService_PostVanishedBeforeWrite(t *testing.T) {
	store := memory.NewStore()
	posts := &stalePosts{post: entity.Post{ID: 9, OwnerID: 3, Title: "t", Content: "c"}}
	social := NewSocialService(posts, store.Comments(), store.Likes(), store.Users(), nil, helpers.NewDiscardLogger(), false)
	ctx := context.Background()

	_, err := social.AddComment(ctx, 9, 4, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrPersistence)

	err = social.Like(ctx, 9, 4)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrPersistence)

	n, err := store.Likes().CountByPost(ctx, 9)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBlogService_DeleteCascades(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")
	id, err := f.blogs.Create(ctx, alice, "title", "content")
	require.NoError(t, err)
	_, err = f.social.AddComment(ctx, id, bob, "nice")
	require.NoError(t, err)
	require.NoError(t, f.social.Like(ctx, id, bob))

	assert.ErrorIs(t, f.blogs.Delete(ctx, id, bob), ErrForbidden)
	require.NoError(t, f.blogs.Delete(ctx, id, alice))

	_, err = f.blogs.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	n, err := f.store.Likes().CountByPost(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)
	comments, err := f.store.Comments().ListByPost(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.ErrorIs(t, f.blogs.Delete(ctx, id, alice), ErrNotFound)
}

func TestSocialService_Comments(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")
	id, err := f.blogs.Create(ctx, alice, "title", "content")
	require.NoError(t, err)

	_, err = f.social.ListComments(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.social.AddComment(ctx, id, bob, "  ")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.social.AddComment(ctx, id+1, bob, "hi")
	assert.ErrorIs(t, err, ErrNotFound)

	c1, err := f.social.AddComment(ctx, id, bob, "first")
	require.NoError(t, err)
	c2, err := f.social.AddComment(ctx, id, alice, "second")
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)

	comments, err := f.social.ListComments(ctx, id)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, bob, comments[0].UserID)
	assert.Equal(t, "second", comments[1].Text)
}

func TestSocialService_LikeToggle(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")
	id, err := f.blogs.Create(ctx, alice, "title", "content")
	require.NoError(t, err)

	assert.ErrorIs(t, f.social.Unlike(ctx, id, bob), ErrNotLiked)
	require.NoError(t, f.social.Like(ctx, id, bob))
	assert.ErrorIs(t, f.social.Like(ctx, id, bob), ErrAlreadyLiked)
	require.NoError(t, f.social.Like(ctx, id, alice))

	d, err := f.blogs.GetDetail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Likes)

	require.NoError(t, f.social.Unlike(ctx, id, bob))
	assert.ErrorIs(t, f.social.Unlike(ctx, id, bob), ErrNotLiked)
	require.NoError(t, f.social.Like(ctx, id, bob))

	assert.ErrorIs(t, f.social.Like(ctx, id+5, bob), ErrNotFound)
	assert.ErrorIs(t, f.social.Unlike(ctx, id+5, bob), ErrNotFound)
}

// A like on one post must not block liking a different post.
func TestSocialService_LikeIsPerPost(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")
	p1, err := f.blogs.Create(ctx, alice, "one", "c")
	require.NoError(t, err)
	p2, err := f.blogs.Create(ctx, alice, "two", "c")
	require.NoError(t, err)

	require.NoError(t, f.social.Like(ctx, p1, bob))
	require.NoError(t, f.social.Like(ctx, p2, bob))

	require.NoError(t, f.social.Unlike(ctx, p1, bob))
	d, err := f.blogs.GetDetail(ctx, p2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Likes)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyComment(ctx context.Context, n CommentNotification) error {
	return m.Called(ctx, n).Error(0)
}

func TestSocialService_NotifiesOwner(t *testing.T) {
	n := new(mockNotifier)
	f := newFixture(t, n)
	ctx := context.Background()
	alice, bob := f.register(t, "alice"), f.register(t, "bob")
	id, err := f.blogs.Create(ctx, alice, "title", "content")
	require.NoError(t, err)

	n.On("NotifyComment", mock.Anything, mock.MatchedBy(func(c CommentNotification) bool {
		return c.OwnerEmail == "alice@example.com" && c.ActorName == "bob" && c.PostID == id && c.Comment == "hello"
	})).Return(assert.AnError).Once()

	// a failing notifier does not fail the comment
	_, err = f.social.AddComment(ctx, id, bob, "hello")
	require.NoError(t, err)

	// the owner commenting on their own post is not notified
	_, err = f.social.AddComment(ctx, id, alice, "thanks")
	require.NoError(t, err)

	n.AssertExpectations(t)
	n.AssertNumberOfCalls(t, "NotifyComment", 1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishJSON(ctx context.Context, body any) error {
	return m.Called(ctx, body).Error(0)
}

func TestQueueNotifier_PublishesEmailJob(t *testing.T) {
	pub := new(mockPublisher)
	q := NewQueueNotifier(pub, "Blog", "http://localhost:3002/")

	pub.On("PublishJSON", mock.Anything, mock.Anything).Return(nil).Once()

	err := q.NotifyComment(context.Background(), CommentNotification{
		OwnerName:  "Alice",
		OwnerEmail: "alice@example.com",
		ActorName:  "Bob",
		PostID:     3,
		PostTitle:  "Hello",
		Comment:    "nice",
		At:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	job, ok := pub.Calls[0].Arguments.Get(1).(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", job.To)
	assert.Equal(t, templates.CommentNotification, job.Template)
	assert.Equal(t, "Bob", job.Data["ActorName"])
	assert.Equal(t, "http://localhost:3002/api/blogs/3", job.Data["PostURL"])
	pub.AssertExpectations(t)
}
