package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog-api/internal/interface/middleware"
)

// Module describes a feature module that registers its routes on the /api group.
// Routes that need a user wrap their handler with gate.Require.
type Module interface {
	Register(rg *gin.RouterGroup, gate *middleware.Gate)
}
