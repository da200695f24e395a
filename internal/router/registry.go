package router

import "github.com/gin-gonic/gin"

// Module is a feature slice that registers its own routes on the shared
// /api group. Modules hold their handlers and decide per route which
// middleware chain applies.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules and group-wide middleware, then registers them
// onto the engine in one pass.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use appends middleware applied to the whole /api group before any module
// routes are registered.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll wires group middleware and every module's routes. Call once,
// after all Add calls.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
