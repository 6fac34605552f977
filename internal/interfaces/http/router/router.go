package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wms/backend/internal/interfaces/http/dto"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. All API routes live under /api;
// every other path falls through to the SPA shell.
type Router struct {
	engine     *gin.Engine
	staticDir  string
	registrars []RouteRegistrar
}

// NewRouter creates a new Router instance serving static assets from staticDir
func NewRouter(engine *gin.Engine, staticDir string) *Router {
	return &Router{
		engine:     engine,
		staticDir:  staticDir,
		registrars: make([]RouteRegistrar, 0),
	}
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes and the catch-all. Unmatched /api paths get a
// JSON 404; everything else gets the static file when one exists, otherwise
// the SPA shell.
func (r *Router) Setup() {
	api := r.engine.Group("/api")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
			return
		}
		r.serveStatic(c)
	})
}

func (r *Router) serveStatic(c *gin.Context) {
	if r.staticDir == "" {
		c.Status(http.StatusNotFound)
		return
	}

	// Resolve inside staticDir only; traversal attempts collapse to the shell.
	rel := filepath.Clean("/" + c.Request.URL.Path)
	candidate := filepath.Join(r.staticDir, rel)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		c.File(candidate)
		return
	}

	c.File(filepath.Join(r.staticDir, "index.html"))
}
