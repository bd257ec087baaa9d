package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog-api/internal/interface/middleware"
)

type BlogModule struct {
	Handler *handlers.BlogHandler
}

func NewBlogModule(h *handlers.BlogHandler) *BlogModule {
	return &BlogModule{Handler: h}
}

func (m *BlogModule) Register(rg *gin.RouterGroup, gate *middleware.Gate) {
	// Public reads
	rg.GET("/all-blogs", m.Handler.ListAll)
	rg.GET("/blogs/:id", m.Handler.Get)

	rg.GET("/my-blogs", gate.Require(m.Handler.ListMine))
	rg.POST("/blogs", gate.Require(m.Handler.Create))
	rg.PATCH("/blogs/:id", gate.Require(m.Handler.Update))
	rg.DELETE("/blogs/:id", gate.Require(m.Handler.Delete))
}
