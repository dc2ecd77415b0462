package database

import (
	"fmt"
	"strconv"

	"github.com/MrWebMD/hamurai-name-server/internal/config"
	"github.com/MrWebMD/hamurai-name-server/internal/helpers"
)

func configValues(cfg *config.Config) map[string]string {
	return map[string]string{
		ConfigKeyServerHost:    cfg.Server.Host,
		ConfigKeyServerPort:    strconv.Itoa(cfg.Server.Port),
		ConfigKeyZoneDomain:    cfg.Zone.Domain,
		ConfigKeyZoneAddress:   cfg.Zone.Address,
		ConfigKeyZoneTTL:       strconv.FormatUint(uint64(cfg.Zone.TTL), 10),
		ConfigKeyLoggingLevel:  cfg.Logging.Level,
		ConfigKeyLoggingFormat: cfg.Logging.Format,
		ConfigKeyAPIEnabled:    strconv.FormatBool(cfg.API.Enabled),
		ConfigKeyAPIHost:       cfg.API.Host,
		ConfigKeyAPIPort:       strconv.Itoa(cfg.API.Port),
		ConfigKeyAPIKey:        cfg.API.APIKey,
	}
}

// SeedFromConfig stores every setting of cfg whose key is not yet present.
// Existing rows are never overwritten, so the first run records the
// effective configuration and later runs leave edits alone.
// Returns the number of keys inserted.
func (db *DB) SeedFromConfig(cfg *config.Config) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO config (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare config insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for key, value := range configValues(cfg) {
		res, err := stmt.Exec(key, value)
		if err != nil {
			return 0, fmt.Errorf("failed to seed %s: %w", key, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return inserted, nil
}

// ApplyToConfig overlays the stored settings onto cfg and re-validates it.
// Keys without a row keep the value already in cfg.
func (db *DB) ApplyToConfig(cfg *config.Config) error {
	stored, err := db.GetAllConfig()
	if err != nil {
		return err
	}

	setString := func(key string, dst *string) {
		if v, ok := stored[key]; ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := stored[key]
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid stored %s %q: %w", key, v, err)
		}
		*dst = n
		return nil
	}

	setString(ConfigKeyServerHost, &cfg.Server.Host)
	if err := setInt(ConfigKeyServerPort, &cfg.Server.Port); err != nil {
		return err
	}
	setString(ConfigKeyZoneDomain, &cfg.Zone.Domain)
	setString(ConfigKeyZoneAddress, &cfg.Zone.Address)
	if v, ok := stored[ConfigKeyZoneTTL]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid stored %s %q: %w", ConfigKeyZoneTTL, v, err)
		}
		cfg.Zone.TTL = helpers.ClampIntToUint32(n)
	}
	setString(ConfigKeyLoggingLevel, &cfg.Logging.Level)
	setString(ConfigKeyLoggingFormat, &cfg.Logging.Format)
	if v, ok := stored[ConfigKeyAPIEnabled]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid stored %s %q: %w", ConfigKeyAPIEnabled, v, err)
		}
		cfg.API.Enabled = b
	}
	setString(ConfigKeyAPIHost, &cfg.API.Host)
	if err := setInt(ConfigKeyAPIPort, &cfg.API.Port); err != nil {
		return err
	}
	setString(ConfigKeyAPIKey, &cfg.API.APIKey)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("stored configuration is invalid: %w", err)
	}
	return nil
}
