// Package handlers implements the REST API endpoint handlers.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Liveness, instance ID and settings store status
//   - GET /api/v1/stats - Runtime, process and DNS reply statistics
//
// Zone and configuration:
//   - GET /api/v1/zone - The zone record being served
//   - GET /api/v1/config - Effective configuration (API key redacted)
//   - GET /api/v1/settings - Stored settings (settings store only)
//   - PUT /api/v1/settings/:key - Update a stored setting, applied on restart
//
// Authentication:
//
// When an API key is configured every endpoint except /health requires the
// X-API-Key header.
//
// @title hamurai Management API
// @version 1.0
// @description Read-only status and settings API for the hamurai name server.
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/MrWebMD/hamurai-name-server/internal/config"
	"github.com/MrWebMD/hamurai-name-server/internal/database"
	"github.com/MrWebMD/hamurai-name-server/internal/server"
	"github.com/MrWebMD/hamurai-name-server/internal/zone"
)

// Options carries the runtime components the handlers report on.
// Every field is optional.
type Options struct {
	InstanceID string
	Zone       *zone.Zone
	Stats      *server.DNSStats
	DB         *database.DB
}

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	logger    *slog.Logger
	startTime time.Time
	opts      Options
	proc      *process.Process // nil when the process cannot be inspected
}

// New creates a new Handler for cfg. A nil cfg means config.Default().
func New(cfg *config.Config, logger *slog.Logger, opts Options) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		cfg:       cfg,
		logger:    logger,
		startTime: time.Now(),
		opts:      opts,
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil { //nolint:gosec // pid fits in int32
		h.proc = p
	} else {
		logger.Debug("process stats unavailable", "err", err)
	}
	return h
}
