package application

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
}

// TokenIssuer signs session tokens for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// AuthService registers users and exchanges credentials for session tokens.
type AuthService struct {
	Users  repo.UserRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, Tokens: tokens, Logger: logger}
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Register creates a user and returns the new user id.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (int64, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return 0, errors.Wrap(ErrValidation, "name, email_id and password are required")
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return 0, errors.Wrap(ErrValidation, "password is too long")
		}
		return 0, errors.Wrap(err, "hash password")
	}

	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			s.Logger.WithField("email", email).Warn("register rejected: email already registered")
		}
		return 0, persistence(err, "insert user")
	}

	s.Logger.WithField("user_id", u.ID).Info("user registered")
	return u.ID, nil
}

// Login verifies the password of userID and issues a session token.
func (s *AuthService) Login(ctx context.Context, userID int64, password string) (Session, error) {
	if userID <= 0 || password == "" {
		return Session{}, errors.Wrap(ErrValidation, "user_id and password are required")
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Session{}, errors.Wrapf(ErrNotFound, "no user found with id %d", userID)
		}
		return Session{}, persistence(err, "load user")
	}

	ok, err := s.Hasher.Verify(password, u.PasswordHash)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("stored password hash is unreadable")
		return Session{}, errors.Wrapf(ErrInvalidCredentials, "user %d", userID)
	}
	if !ok {
		s.Logger.WithField("user_id", userID).Info("login rejected: wrong password")
		return Session{}, errors.Wrapf(ErrInvalidCredentials, "user %d", userID)
	}

	token, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}
