// Package memory keeps every table in process memory. It backs STORAGE_DRIVER=memory
// and the HTTP tests; data is lost on restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

type likeKey struct{ postID, userID int64 }

// Store holds users, posts, comments and likes behind a single lock.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	users    map[int64]entity.User
	emails   map[string]int64
	posts    map[int64]entity.Post
	comments []entity.Comment
	likes    map[likeKey]time.Time

	nextUser, nextPost, nextComment int64
}

func NewStore() *Store {
	return &Store{
		now:    time.Now,
		users:  make(map[int64]entity.User),
		emails: make(map[string]int64),
		posts:  make(map[int64]entity.Post),
		likes:  make(map[likeKey]time.Time),
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s} }
func (s *Store) Posts() *PostRepository       { return &PostRepository{s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s} }
func (s *Store) Likes() *LikeRepository       { return &LikeRepository{s} }

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, taken := s.emails[key]; taken {
		return repository.ErrDuplicate
	}
	s.nextUser++
	u.ID = s.nextUser
	u.CreatedAt = s.now()
	s.users[u.ID] = *u
	s.emails[key] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type PostRepository struct{ s *Store }

func (r *PostRepository) Create(_ context.Context, p *entity.Post) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPost++
	p.ID = s.nextPost
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt
	s.posts[p.ID] = *p
	return nil
}

func (r *PostRepository) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PostRepository) List(_ context.Context) ([]entity.Post, error) {
	return r.filter(func(entity.Post) bool { return true }), nil
}

func (r *PostRepository) ListByOwner(_ context.Context, ownerID int64) ([]entity.Post, error) {
	return r.filter(func(p entity.Post) bool { return p.OwnerID == ownerID }), nil
}

func (r *PostRepository) filter(keep func(entity.Post) bool) []entity.Post {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *PostRepository) Update(_ context.Context, id, ownerID int64, patch entity.PostPatch) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok || p.OwnerID != ownerID {
		return 0, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	p.UpdatedAt = s.now()
	s.posts[id] = p
	return 1, nil
}

func (r *PostRepository) Delete(_ context.Context, id, ownerID int64) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok || p.OwnerID != ownerID {
		return 0, nil
	}
	delete(s.posts, id)
	for k := range s.likes {
		if k.postID == id {
			delete(s.likes, k)
		}
	}
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.PostID != id {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return 1, nil
}

type CommentRepository struct{ s *Store }

func (r *CommentRepository) Create(_ context.Context, c *entity.Comment) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[c.PostID]; !ok {
		return repository.ErrNotFound
	}
	s.nextComment++
	c.ID = s.nextComment
	c.CreatedAt = s.now()
	s.comments = append(s.comments, *c)
	return nil
}

func (r *CommentRepository) ListByPost(_ context.Context, postID int64) ([]entity.Comment, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type LikeRepository struct{ s *Store }

func (r *LikeRepository) Exists(_ context.Context, postID, userID int64) (bool, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.likes[likeKey{postID, userID}]
	return ok, nil
}

func (r *LikeRepository) Create(_ context.Context, postID, userID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return repository.ErrNotFound
	}
	k := likeKey{postID, userID}
	if _, ok := s.likes[k]; ok {
		return repository.ErrDuplicate
	}
	s.likes[k] = s.now()
	return nil
}

func (r *LikeRepository) Delete(_ context.Context, postID, userID int64) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	k := likeKey{postID, userID}
	if _, ok := s.likes[k]; !ok {
		return 0, nil
	}
	delete(s.likes, k)
	return 1, nil
}

func (r *LikeRepository) CountByPost(_ context.Context, postID int64) (int64, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for k := range s.likes {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.PostRepository    = (*PostRepository)(nil)
	_ repository.CommentRepository = (*CommentRepository)(nil)
	_ repository.LikeRepository    = (*LikeRepository)(nil)
)
