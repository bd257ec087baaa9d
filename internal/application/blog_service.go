package application

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

// BlogService owns post CRUD. Reads are public; every mutation is restricted to the post owner.
type BlogService struct {
	Posts  repo.PostRepository
	Likes  repo.LikeRepository
	Logger *logrus.Logger

	// EmptyAsNotFound reports empty listings as ErrNotFound instead of an empty slice.
	EmptyAsNotFound bool
}

func NewBlogService(posts repo.PostRepository, likes repo.LikeRepository, logger *logrus.Logger, emptyAsNotFound bool) *BlogService {
	return &BlogService{Posts: posts, Likes: likes, Logger: logger, EmptyAsNotFound: emptyAsNotFound}
}

// UpdatePostInput holds the optional fields of an update. Nil or empty means "leave as is".
type UpdatePostInput struct {
	Title   *string
	Content *string
}

func (in UpdatePostInput) patch() entity.PostPatch {
	var p entity.PostPatch
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		p.Title = in.Title
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) != "" {
		p.Content = in.Content
	}
	return p
}

// PostDetail is a post with its like count.
type PostDetail struct {
	entity.Post
	Likes int64 `json:"likes"`
}

func (s *BlogService) ListAll(ctx context.Context) ([]entity.Post, error) {
	posts, err := s.Posts.List(ctx)
	if err != nil {
		return nil, persistence(err, "list posts")
	}
	return s.emptyCheck(posts, "no blogs found")
}

func (s *BlogService) ListMine(ctx context.Context, userID int64) ([]entity.Post, error) {
	posts, err := s.Posts.ListByOwner(ctx, userID)
	if err != nil {
		return nil, persistence(err, "list posts by owner")
	}
	return s.emptyCheck(posts, "you have not written any blogs")
}

func (s *BlogService) emptyCheck(posts []entity.Post, msg string) ([]entity.Post, error) {
	if len(posts) == 0 {
		if s.EmptyAsNotFound {
			return nil, errors.Wrap(ErrNotFound, msg)
		}
		return []entity.Post{}, nil
	}
	return posts, nil
}

// Get returns a post by id.
func (s *BlogService) Get(ctx context.Context, blogID int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "no blog found with id %d", blogID)
		}
		return nil, persistence(err, "load post")
	}
	return p, nil
}

// GetDetail returns a post together with its like count.
func (s *BlogService) GetDetail(ctx context.Context, blogID int64) (*PostDetail, error) {
	p, err := s.Get(ctx, blogID)
	if err != nil {
		return nil, err
	}
	n, err := s.Likes.CountByPost(ctx, blogID)
	if err != nil {
		return nil, persistence(err, "count likes")
	}
	return &PostDetail{Post: *p, Likes: n}, nil
}

// Create stores a new post owned by userID and returns its id.
func (s *BlogService) Create(ctx context.Context, userID int64, title, content string) (int64, error) {
	if userID <= 0 || strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return 0, errors.Wrap(ErrValidation, "title and content are required")
	}
	p := &entity.Post{OwnerID: userID, Title: title, Content: content}
	if err := s.Posts.Create(ctx, p); err != nil {
		return 0, persistence(err, "insert post")
	}
	s.Logger.WithFields(logrus.Fields{"blog_id": p.ID, "user_id": userID}).Info("blog created")
	return p.ID, nil
}

// Update changes title and/or content in one statement, only for the owner.
func (s *BlogService) Update(ctx context.Context, blogID, requesterID int64, in UpdatePostInput) error {
	p, err := s.Get(ctx, blogID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(requesterID) {
		return errors.Wrapf(ErrForbidden, "user %d does not own blog %d", requesterID, blogID)
	}
	patch := in.patch()
	if patch.Empty() {
		return errors.Wrap(ErrValidation, "nothing to update: provide title or content")
	}

	n, err := s.Posts.Update(ctx, blogID, requesterID, patch)
	if err != nil {
		return persistence(err, "update post")
	}
	if n == 0 {
		return errors.Wrapf(ErrUpdateFailed, "blog %d", blogID)
	}
	s.Logger.WithFields(logrus.Fields{"blog_id": blogID, "user_id": requesterID}).Info("blog updated")
	return nil
}

// Delete removes a post and, with it, its comments and likes. Only the owner may delete.
func (s *BlogService) Delete(ctx context.Context, blogID, requesterID int64) error {
	p, err := s.Get(ctx, blogID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(requesterID) {
		return errors.Wrapf(ErrForbidden, "user %d does not own blog %d", requesterID, blogID)
	}

	n, err := s.Posts.Delete(ctx, blogID, requesterID)
	if err != nil {
		return persistence(err, "delete post")
	}
	if n == 0 {
		// removed between the ownership check and the delete
		return errors.Wrapf(ErrNotFound, "no blog found with id %d", blogID)
	}
	s.Logger.WithFields(logrus.Fields{"blog_id": blogID, "user_id": requesterID}).Info("blog deleted")
	return nil
}
