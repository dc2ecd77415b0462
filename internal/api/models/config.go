package models

import "github.com/MrWebMD/hamurai-name-server/internal/config"

// ConfigResponse is the API response for GET /config.
// The API key is always redacted.
type ConfigResponse struct {
	Config  config.Config `json:"config"`
	Version *int64        `json:"version,omitempty"` // Settings store version, when enabled
}

// ZoneResponse describes the zone the server is authoritative for.
type ZoneResponse struct {
	Domain  string `json:"domain"`
	Type    string `json:"type"`
	Class   string `json:"class"`
	Address string `json:"address"`
	TTL     uint32 `json:"ttl"`
	Record  string `json:"record"` // Presentation form, e.g. "ricklantis.com 10 IN A 147.182.185.61"
}

// SettingsResponse lists the stored settings.
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
	Version  int64             `json:"version"`
}

// SettingRequest is the body of PUT /settings/{key}.
type SettingRequest struct {
	Value string `json:"value"`
}

// SettingResponse echoes a stored setting. Settings apply on the next restart.
type SettingResponse struct {
	Key             string `json:"key"`
	Value           string `json:"value"`
	Version         int64  `json:"version"`
	RestartRequired bool   `json:"restart_required"`
}
