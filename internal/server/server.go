// Package server exposes primer design as HTTP tools for agent callers:
// each tool is a POST endpoint taking the same parameters as the library
// surface and answering with a design result.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"primerd/config"
	"primerd/primer3"
)

// Server wires the design tools onto a gin router.
type Server struct {
	router *gin.Engine
	oracle primer3.Oracle
	conf   *config.Config
	log    *zap.Logger
}

// New creates a tool server around an oracle and app settings.
func New(conf *config.Config, oracle primer3.Oracle, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		oracle: oracle,
		conf:   conf,
		log:    log,
	}

	s.router.Use(gin.Recovery(), s.requestLogger())
	s.router.GET("/healthz", s.health)

	tools := s.router.Group("/v1/tools")
	tools.POST("/design_primers", s.designPrimers)
	tools.POST("/troubleshoot_primers", s.troubleshootPrimers)

	return s
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("serving primer design tools", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLogger tags every request with a uuid and logs its outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
