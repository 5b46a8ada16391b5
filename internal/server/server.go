package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sicet/internal/config"
	"sicet/internal/server/handlers"
	"sicet/internal/service/store"
)

// Server wires the HTTP layer: router, shared store and handlers.
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	cfg    *config.AppConfig
}

// NewServer builds the router with CORS and all API routes mounted.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(corsMiddleware())

	s := &Server{
		router: router,
		store:  store.NewMemoryStore(),
		cfg:    cfg,
	}

	h := handlers.NewHandlers(s.store, cfg)
	api := router.Group("/api")
	h.RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return s
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	return s.router.Run(addr)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// GetStore exposes the shared store for tests.
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
