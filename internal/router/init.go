package router

import (
	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog-api/internal/router/modules"
)

type blogDeps struct {
	Auth   *handlers.AuthHandler
	Blog   *handlers.BlogHandler
	Social *handlers.SocialHandler
}

func buildDeps(c *container.Container) blogDeps {
	repos := c.Repos
	emptyAsNotFound := c.Config.EmptyListNotFound

	authSvc := application.NewAuthService(repos.Users, c.Hasher, c.JWT, c.Logger)
	blogSvc := application.NewBlogService(repos.Posts, repos.Likes, c.Logger, emptyAsNotFound)
	socialSvc := application.NewSocialService(repos.Posts, repos.Comments, repos.Likes, repos.Users, c.Notifier, c.Logger, emptyAsNotFound)

	return blogDeps{
		Auth:   handlers.NewAuthHandler(authSvc, c.Logger),
		Blog:   handlers.NewBlogHandler(blogSvc, c.Logger),
		Social: handlers.NewSocialHandler(socialSvc, c.Logger),
	}
}

// InitModules builds services and handlers from the container and registers every module.
// Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	deps := buildDeps(c)
	r.Add(modules.NewAuthModule(deps.Auth))
	r.Add(modules.NewBlogModule(deps.Blog))
	r.Add(modules.NewSocialModule(deps.Social))
}
