package database

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
)

// Configuration key names in the database.
const (
	ConfigKeyServerHost = "server.host"
	ConfigKeyServerPort = "server.port"

	ConfigKeyZoneDomain  = "zone.domain"
	ConfigKeyZoneAddress = "zone.address"
	ConfigKeyZoneTTL     = "zone.ttl"

	ConfigKeyLoggingLevel  = "logging.level"
	ConfigKeyLoggingFormat = "logging.format"

	ConfigKeyAPIEnabled = "api.enabled"
	ConfigKeyAPIHost    = "api.host"
	ConfigKeyAPIPort    = "api.port"
	ConfigKeyAPIKey     = "api.api_key"
)

// ConfigKeys lists every setting the server reads from the store.
var ConfigKeys = []string{
	ConfigKeyServerHost,
	ConfigKeyServerPort,
	ConfigKeyZoneDomain,
	ConfigKeyZoneAddress,
	ConfigKeyZoneTTL,
	ConfigKeyLoggingLevel,
	ConfigKeyLoggingFormat,
	ConfigKeyAPIEnabled,
	ConfigKeyAPIHost,
	ConfigKeyAPIPort,
	ConfigKeyAPIKey,
}

// IsConfigKey reports whether key is one of ConfigKeys.
func IsConfigKey(key string) bool {
	return slices.Contains(ConfigKeys, key)
}

// ErrNotFound is returned by GetConfig for a key that has no row.
var ErrNotFound = errors.New("config key not found")

const upsertConfigSQL = `
	INSERT INTO config (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = CURRENT_TIMESTAMP
`

// SetConfig sets a configuration value.
func (db *DB) SetConfig(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec(upsertConfigSQL, key, value); err != nil {
		return fmt.Errorf("failed to set config %s: %w", key, err)
	}
	return nil
}

// GetConfig retrieves a configuration value.
func (db *DB) GetConfig(key string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var value string
	err := db.conn.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get config %s: %w", key, err)
	}
	return value, nil
}

// GetAllConfig retrieves all configuration key-value pairs.
func (db *DB) GetAllConfig() (map[string]string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT key, value FROM config ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to query config: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan config row: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating config rows: %w", err)
	}
	return out, nil
}

// DeleteConfig removes a configuration key.
func (db *DB) DeleteConfig(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.Exec("DELETE FROM config WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete config %s: %w", key, err)
	}
	return nil
}
