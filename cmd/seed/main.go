package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/config"
	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/internal/container"
	pginfra "github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

// seed creates a demo user with one post so the API can be tried right after setup.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	repos := container.PostgresRepositories(pool, cfg.DBQueryTimeout)
	auth := application.NewAuthService(repos.Users, helpers.NewPasswordHasher(cfg.BcryptCost), nil, logger)
	blogs := application.NewBlogService(repos.Posts, repos.Likes, logger, false)

	const (
		name     = "demoUser"
		email    = "demo@example.com"
		password = "password123"
	)
	userID, err := auth.Register(ctx, name, email, password)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed user (already seeded?)")
	}
	blogID, err := blogs.Create(ctx, userID, "Hello", "World")
	if err != nil {
		logger.WithError(err).Fatal("failed to seed blog")
	}

	logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"email_id": email,
		"password": password,
		"blog_id":  blogID,
	}).Info("seeded demo data; log in with user_id and password")
}
