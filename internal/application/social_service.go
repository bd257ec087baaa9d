package application

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

// SocialService handles comments and likes on posts.
type SocialService struct {
	Posts    repo.PostRepository
	Comments repo.CommentRepository
	Likes    repo.LikeRepository
	Users    repo.UserRepository
	Notifier CommentNotifier // optional
	Logger   *logrus.Logger

	EmptyAsNotFound bool
}

func NewSocialService(posts repo.PostRepository, comments repo.CommentRepository, likes repo.LikeRepository, users repo.UserRepository, notifier CommentNotifier, logger *logrus.Logger, emptyAsNotFound bool) *SocialService {
	return &SocialService{
		Posts:           posts,
		Comments:        comments,
		Likes:           likes,
		Users:           users,
		Notifier:        notifier,
		Logger:          logger,
		EmptyAsNotFound: emptyAsNotFound,
	}
}

func (s *SocialService) loadPost(ctx context.Context, blogID int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "no blog found with id %d", blogID)
		}
		return nil, persistence(err, "load post")
	}
	return p, nil
}

// AddComment appends a comment by userID. Anyone authenticated may comment on any post.
func (s *SocialService) AddComment(ctx context.Context, blogID, userID int64, text string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, errors.Wrap(ErrValidation, "comment cannot be empty")
	}
	p, err := s.loadPost(ctx, blogID)
	if err != nil {
		return 0, err
	}

	c := &entity.Comment{PostID: blogID, UserID: userID, Text: text}
	if err := s.Comments.Create(ctx, c); err != nil {
		// deleted after loadPost
		if errors.Is(err, repo.ErrNotFound) {
			return 0, errors.Wrapf(ErrNotFound, "no blog found with id %d", blogID)
		}
		return 0, persistence(err, "insert comment")
	}
	s.Logger.WithFields(logrus.Fields{"blog_id": blogID, "user_id": userID, "comment_id": c.ID}).Info("comment added")

	if s.Notifier != nil && !p.IsOwnedBy(userID) {
		s.notifyOwner(ctx, p, userID, c)
	}
	return c.ID, nil
}

// notifyOwner is best effort: failures are logged and never reach the commenter.
func (s *SocialService) notifyOwner(ctx context.Context, p *entity.Post, actorID int64, c *entity.Comment) {
	log := s.Logger.WithFields(logrus.Fields{"blog_id": p.ID, "comment_id": c.ID})

	owner, err := s.Users.GetByID(ctx, p.OwnerID)
	if err != nil {
		log.WithError(err).Warn("comment notification skipped: owner lookup failed")
		return
	}
	actorName := ""
	if actor, err := s.Users.GetByID(ctx, actorID); err == nil {
		actorName = actor.Name
	}

	at := c.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	err = s.Notifier.NotifyComment(ctx, CommentNotification{
		OwnerName:  owner.Name,
		OwnerEmail: owner.Email,
		ActorName:  actorName,
		PostID:     p.ID,
		PostTitle:  p.Title,
		Comment:    c.Text,
		At:         at,
	})
	if err != nil {
		log.WithError(err).Warn("failed to publish comment notification")
	}
}

// ListComments returns the comments on a post in insertion order.
func (s *SocialService) ListComments(ctx context.Context, blogID int64) ([]entity.Comment, error) {
	comments, err := s.Comments.ListByPost(ctx, blogID)
	if err != nil {
		return nil, persistence(err, "list comments")
	}
	if len(comments) == 0 {
		if s.EmptyAsNotFound {
			return nil, errors.Wrapf(ErrNotFound, "no comments on blog %d", blogID)
		}
		return []entity.Comment{}, nil
	}
	return comments, nil
}

// Like records that userID likes blogID. A second like of the same pair fails with ErrAlreadyLiked.
func (s *SocialService) Like(ctx context.Context, blogID, userID int64) error {
	if _, err := s.loadPost(ctx, blogID); err != nil {
		return err
	}

	liked, err := s.Likes.Exists(ctx, blogID, userID)
	if err != nil {
		return persistence(err, "check like")
	}
	if liked {
		return errors.Wrapf(ErrAlreadyLiked, "user %d already likes blog %d", userID, blogID)
	}

	if err := s.Likes.Create(ctx, blogID, userID); err != nil {
		// lost a race with a concurrent like of the same pair
		if errors.Is(err, repo.ErrDuplicate) {
			return errors.Wrapf(ErrAlreadyLiked, "user %d already likes blog %d", userID, blogID)
		}
		if errors.Is(err, repo.ErrNotFound) {
			return errors.Wrapf(ErrNotFound, "no blog found with id %d", blogID)
		}
		return persistence(err, "insert like")
	}
	return nil
}

// Unlike removes the like of userID on blogID.
func (s *SocialService) Unlike(ctx context.Context, blogID, userID int64) error {
	if _, err := s.loadPost(ctx, blogID); err != nil {
		return err
	}

	n, err := s.Likes.Delete(ctx, blogID, userID)
	if err != nil {
		return persistence(err, "delete like")
	}
	if n == 0 {
		return errors.Wrapf(ErrNotLiked, "user %d does not like blog %d", userID, blogID)
	}
	return nil
}
