package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog-api/internal/interface/middleware"
)

type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	Gate        *middleware.Gate
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine, gate *middleware.Gate) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api, Gate: gate}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll applies shared middleware and mounts every module with the shared gate.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API, r.Gate)
	}
}
