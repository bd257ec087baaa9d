package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog-api/internal/interface/middleware"
)

// SocialModule mounts comments and likes. Every route requires a token.
type SocialModule struct {
	Handler *handlers.SocialHandler
}

func NewSocialModule(h *handlers.SocialHandler) *SocialModule {
	return &SocialModule{Handler: h}
}

func (m *SocialModule) Register(rg *gin.RouterGroup, gate *middleware.Gate) {
	blog := rg.Group("/blogs/:id")
	blog.GET("/comments", gate.Require(m.Handler.ListComments))
	blog.POST("/comments", gate.Require(m.Handler.AddComment))
	blog.POST("/like", gate.Require(m.Handler.Like))
	blog.DELETE("/like", gate.Require(m.Handler.Unlike))
}
