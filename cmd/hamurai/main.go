package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrWebMD/hamurai-name-server/internal/api"
	"github.com/MrWebMD/hamurai-name-server/internal/api/handlers"
	"github.com/MrWebMD/hamurai-name-server/internal/config"
	"github.com/MrWebMD/hamurai-name-server/internal/database"
	"github.com/MrWebMD/hamurai-name-server/internal/logging"
	"github.com/MrWebMD/hamurai-name-server/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hamurai: %v\n", err)
		os.Exit(1)
	}
}

// run starts the server and blocks until ctx is canceled or the listener
// fails. Everything it opens is closed before it returns.
func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("hamurai", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Path to YAML configuration file (or set "+config.ConfigEnv+")")
		host       = fs.String("host", "", "Override bind host")
		port       = fs.Int("port", 0, "Override bind port")
		domain     = fs.String("zone", "", "Override zone domain")
		address    = fs.String("address", "", "Override zone IPv4 address")
		ttl        = fs.Uint("ttl", 0, "Override answer TTL in seconds")
		jsonLogs   = fs.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = fs.Bool("debug", false, "Enable debug logging (one line per request)")
		enableAPI  = fs.Bool("api", false, "Enable the management API")
		dbPath     = fs.String("db", "", "Path to the SQLite settings store (empty disables it)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	var db *database.DB
	if cfg.Database.Enabled() {
		db, err = openSettings(cfg)
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer db.Close()
	}

	// Flags win over the file, the environment and the settings store.
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *domain != "" {
		cfg.Zone.Domain = *domain
	}
	if *address != "" {
		cfg.Zone.Address = *address
	}
	if *ttl != 0 {
		cfg.Zone.TTL = uint32(min(*ttl, uint(^uint32(0)))) //nolint:gosec // clamped above
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if *enableAPI {
		cfg.API.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		IncludePID:  cfg.Logging.IncludePID,
		ExtraFields: cfg.Logging.ExtraFields,
	})
	logger.Info("hamurai starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"zone", cfg.Zone.Domain,
		"api", cfg.API.Enabled,
		"settings_store", cfg.Database.Path,
	)

	runner := server.NewRunner(logger)
	if cfg.API.Enabled {
		shutdown, err := startAPI(cfg, logger, runner, db)
		if err != nil {
			return fmt.Errorf("failed to start api: %w", err)
		}
		defer shutdown()
	}

	return runner.RunWithContext(ctx, cfg)
}

// openSettings opens the settings store, records any settings it does not
// hold yet and overlays the stored values onto cfg.
func openSettings(cfg *config.Config) (*database.DB, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if _, err := db.SeedFromConfig(cfg); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.ApplyToConfig(cfg); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// startAPI runs the management API in the background and returns a function
// that shuts it down.
func startAPI(cfg *config.Config, logger *slog.Logger, runner *server.Runner, db *database.DB) (func(), error) {
	z, err := cfg.BuildZone()
	if err != nil {
		return nil, err
	}
	srv := api.New(cfg, logger, handlers.Options{
		InstanceID: runner.InstanceID(),
		Zone:       z,
		Stats:      runner.Stats(),
		DB:         db,
	})

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("api shutdown", "err", err)
		}
	}, nil
}
