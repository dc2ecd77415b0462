// Package api provides the management REST API for the name server.
// It exposes health, statistics, the served zone and the settings store
// through a Gin-based HTTP server, plus Swagger UI and an embedded status page.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MrWebMD/hamurai-name-server/internal/api/handlers"
	"github.com/MrWebMD/hamurai-name-server/internal/api/middleware"
	"github.com/MrWebMD/hamurai-name-server/internal/config"
)

// HTTP limits. The API only serves small JSON documents and one HTML page.
const (
	readHeaderTimeout = 5 * time.Second
	requestTimeout    = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server serves the management API next to the DNS listener. It holds no
// DNS state of its own; everything it reports comes from handlers.Options.
//
// Set api.api_key before binding to anything but loopback.
type Server struct {
	logger *slog.Logger
	engine *gin.Engine
	http   *http.Server
}

// New wires routes, the status page and middleware for cfg.API.
// Any field of opts may be left empty; the matching endpoints then report
// 404 or 503 instead of failing.
func New(cfg *config.Config, logger *slog.Logger, opts handlers.Options) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.SlogRequestLogger(logger))
	RegisterRoutes(engine, handlers.New(cfg, logger, opts), cfg)
	MountSPA(engine, logger)

	return &Server{
		logger: logger,
		engine: engine,
		http: &http.Server{
			Addr:              cfg.API.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
			IdleTimeout:       idleTimeout,
		},
	}
}

// Addr is the api.host:api.port the server binds in ListenAndServe.
func (s *Server) Addr() string { return s.http.Addr }

// Engine exposes the router so tests can drive it with httptest.
func (s *Server) Engine() *gin.Engine { return s.engine }

// ListenAndServe binds Addr and serves until Shutdown, after which it
// returns http.ErrServerClosed.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener and closes it on return.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("api listening", "addr", ln.Addr().String())
	return s.http.Serve(ln)
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
