// Package container holds the components built once at startup and shared by the router.
package container

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/config"
	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

// Repositories groups one implementation of every repository.
type Repositories struct {
	Users    repo.UserRepository
	Posts    repo.PostRepository
	Comments repo.CommentRepository
	Likes    repo.LikeRepository
}

func PostgresRepositories(pool *pgxpool.Pool, queryTimeout time.Duration) Repositories {
	return Repositories{
		Users:    pginfra.NewUserRepository(pool, queryTimeout),
		Posts:    pginfra.NewPostRepository(pool, queryTimeout),
		Comments: pginfra.NewCommentRepository(pool, queryTimeout),
		Likes:    pginfra.NewLikeRepository(pool, queryTimeout),
	}
}

func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Users:    s.Users(),
		Posts:    s.Posts(),
		Comments: s.Comments(),
		Likes:    s.Likes(),
	}
}

// Container is built in main and handed to router.InitModules.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Repos  Repositories
	JWT    *helpers.JWTManager
	Hasher *helpers.PasswordHasher

	// Notifier is nil when comment notifications are disabled.
	Notifier application.CommentNotifier
}

func New(cfg *config.Config, logger *logrus.Logger, repos Repositories, jwt *helpers.JWTManager, notifier application.CommentNotifier) *Container {
	return &Container{
		Config:   cfg,
		Logger:   logger,
		Repos:    repos,
		JWT:      jwt,
		Hasher:   helpers.NewPasswordHasher(cfg.BcryptCost),
		Notifier: notifier,
	}
}
