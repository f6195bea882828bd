package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	APIKeys      []string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	httpServer *http.Server
}

// New creates a new ops API server
func New(cfg Config, st store.Store) *Server {
	return &Server{
		config: cfg,
		store:  st,
	}
}

// SetupRoutes configures all ops API routes
func SetupRoutes(router *gin.Engine, handler *Handler, apiKeys []string) {
	// Health check endpoint (no auth)
	router.GET("/healthz", handler.HealthCheck)

	v1 := router.Group("/v1", APIKeyAuth(apiKeys))
	{
		v1.GET("/collections", handler.ListCollections)
		v1.GET("/collections/:address/items", handler.ListCollectionItems)
		v1.GET("/items/order/:orderID", handler.GetItemByOrder)
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Recovery())
	router.Use(Logger())
	router.Use(SetupCORS())

	SetupRoutes(router, NewHandler(s.store), s.config.APIKeys)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting ops API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down ops API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
