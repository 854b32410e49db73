package httpapi

import "github.com/gin-gonic/gin"

// Controller registers a set of routes on a version group.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// Router manages the HTTP server and the controllers mounted on it.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
}

// Config holds the settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes, e.g. "/api"
	Controllers []Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Handler builds the gin engine with every controller mounted under
// baseURL/v1. Split from Run so tests can drive it with httptest.
func (r *Router) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	api := engine.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.Register(v1)
			}
		}
	}

	return engine
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()

	return r.Handler().Run(r.addr)
}
