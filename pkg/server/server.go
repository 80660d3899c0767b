package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giapha-vn/giapha/pkg/config"
	"github.com/giapha-vn/giapha/pkg/server/handlers"
	"github.com/giapha-vn/giapha/pkg/snapstore"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	router *gin.Engine
	store  snapstore.Store
	logger *slog.Logger
	server *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, store snapstore.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}
}

// Setup sets up the server routes and middleware
func (s *Server) Setup() {
	// Set gin mode
	gin.SetMode(s.config.Server.Mode)

	// Create router
	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.store)
	treeHandler := handlers.NewTreeHandler(s.store)
	addressingHandler := handlers.NewAddressingHandler(s.store, s.logger)

	// Health endpoints
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)
	s.router.GET("/live", healthHandler.LivenessCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		trees := v1.Group("/trees")
		{
			trees.POST("", treeHandler.CreateTree)
			trees.GET("", treeHandler.ListTrees)
			trees.GET("/:id", treeHandler.GetTree)
			trees.DELETE("/:id", treeHandler.DeleteTree)

			trees.GET("/:id/addressing", addressingHandler.AddressAll)
			trees.GET("/:id/addressing/:target", addressingHandler.Addressing)
			trees.GET("/:id/path", addressingHandler.Path)
			trees.GET("/:id/clusters", addressingHandler.Clusters)
		}
	}
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Reference-ID")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
