package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/MrWebMD/hamurai-name-server/internal/config"
	"github.com/MrWebMD/hamurai-name-server/internal/resolvers"
)

// stopTimeout bounds graceful shutdown of the listener.
const stopTimeout = 5 * time.Second

// Runner orchestrates the DNS server startup and shutdown.
type Runner struct {
	logger     *slog.Logger
	instanceID string
	stats      *DNSStats
	udp        *UDPServer
}

// NewRunner creates a new server runner with the given logger.
// Each runner gets a random instance ID reported by the management API.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:     logger,
		instanceID: uuid.NewString(),
		stats:      NewDNSStats(),
		udp:        &UDPServer{Logger: logger},
	}
}

// InstanceID identifies this process in logs and API responses.
func (r *Runner) InstanceID() string { return r.instanceID }

// Stats returns the counters shared with the management API.
func (r *Runner) Stats() *DNSStats { return r.stats }

// UDP returns the listener, mainly so tests can learn the bound address.
func (r *Runner) UDP() *UDPServer { return r.udp }

// Run starts the DNS server and blocks until SIGINT or SIGTERM.
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the DNS server and blocks until ctx is canceled or
// the listener fails.
//
// Server lifecycle:
//  1. Build the zone and dispatcher from cfg
//  2. Start the UDP listener
//  3. Wait for cancellation or a listener error
//  4. Stop the listener with a timeout
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	ctx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	z, err := cfg.BuildZone()
	if err != nil {
		return err
	}
	r.udp.Handler = &QueryHandler{
		Logger:     r.logger,
		Dispatcher: resolvers.NewDispatcher(z),
		Stats:      r.stats,
	}

	addr := cfg.Server.Addr()
	r.logger.Info("dns listening",
		"addr", addr,
		"zone", z.String(),
		"instance_id", r.instanceID,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- r.udp.Run(ctx, addr) }()

	select {
	case <-ctx.Done():
		// shutdown requested
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	}

	if err := r.udp.Stop(stopTimeout); err != nil {
		r.logger.Warn("dns listener did not stop cleanly", "err", err)
	}
	r.logger.Info("dns stopped", "queries", r.stats.Snapshot().QueriesTotal)
	return nil
}
