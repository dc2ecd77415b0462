package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrWebMD/hamurai-name-server/internal/api/handlers"
	"github.com/MrWebMD/hamurai-name-server/internal/api/models"
	"github.com/MrWebMD/hamurai-name-server/internal/config"
	"github.com/MrWebMD/hamurai-name-server/internal/database"
)

func TestGetConfigRedactsAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.API.APIKey = "super-secret"
	h := handlers.New(cfg, nil, handlers.Options{})

	w := do(setupTestRouter(h), http.MethodGet, "/api/v1/config", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "super-secret")
	resp := decode[models.ConfigResponse](t, w)
	assert.Equal(t, "********", resp.Config.API.APIKey)
	assert.Equal(t, "ricklantis.com", resp.Config.Zone.Domain)
	assert.Nil(t, resp.Version)
	assert.Equal(t, "super-secret", cfg.API.APIKey)
}

func TestGetConfigIncludesVersion(t *testing.T) {
	cfg := config.Default()
	db := openSeededDB(t, cfg)
	h := handlers.New(cfg, nil, handlers.Options{DB: db})

	w := do(setupTestRouter(h), http.MethodGet, "/api/v1/config", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ConfigResponse](t, w)
	require.NotNil(t, resp.Version)
	assert.Positive(t, *resp.Version)
}

func TestGetZone(t *testing.T) {
	cfg := config.Default()
	z, err := cfg.BuildZone()
	require.NoError(t, err)
	h := handlers.New(cfg, nil, handlers.Options{Zone: z})

	w := do(setupTestRouter(h), http.MethodGet, "/api/v1/zone", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ZoneResponse](t, w)
	assert.Equal(t, "ricklantis.com", resp.Domain)
	assert.Equal(t, "A", resp.Type)
	assert.Equal(t, "IN", resp.Class)
	assert.Equal(t, "147.182.185.61", resp.Address)
	assert.Equal(t, uint32(10), resp.TTL)
	assert.Equal(t, z.String(), resp.Record)
}

func TestGetZoneMissing(t *testing.T) {
	h := handlers.New(config.Default(), nil, handlers.Options{})
	w := do(setupTestRouter(h), http.MethodGet, "/api/v1/zone", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsWithoutDatabase(t *testing.T) {
	h := handlers.New(config.Default(), nil, handlers.Options{})
	r := setupTestRouter(h)

	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/v1/settings", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		do(r, http.MethodPut, "/api/v1/settings/zone.ttl", `{"value":"30"}`).Code)
}

func TestListSettings(t *testing.T) {
	cfg := config.Default()
	cfg.API.APIKey = "super-secret"
	db := openSeededDB(t, cfg)
	h := handlers.New(cfg, nil, handlers.Options{DB: db})

	w := do(setupTestRouter(h), http.MethodGet, "/api/v1/settings", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.SettingsResponse](t, w)
	assert.Len(t, resp.Settings, len(database.ConfigKeys))
	assert.Equal(t, "ricklantis.com", resp.Settings[database.ConfigKeyZoneDomain])
	assert.Equal(t, "********", resp.Settings[database.ConfigKeyAPIKey])
	assert.Positive(t, resp.Version)
}

func TestPutSetting(t *testing.T) {
	cfg := config.Default()
	db := openSeededDB(t, cfg)
	h := handlers.New(cfg, nil, handlers.Options{DB: db})
	before, err := db.GetVersion()
	require.NoError(t, err)

	w := do(setupTestRouter(h), http.MethodPut, "/api/v1/settings/zone.address", `{"value":"10.0.0.1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.SettingResponse](t, w)
	assert.Equal(t, "zone.address", resp.Key)
	assert.Equal(t, "10.0.0.1", resp.Value)
	assert.True(t, resp.RestartRequired)
	assert.Greater(t, resp.Version, before)

	stored, err := db.GetConfig(database.ConfigKeyZoneAddress)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", stored)
	// The running configuration is untouched until restart.
	assert.Equal(t, "147.182.185.61", cfg.Zone.Address)
}

func TestPutSettingRejectsInvalidValue(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{database.ConfigKeyZoneAddress, "not-an-ip"},
		{database.ConfigKeyZoneAddress, "::1"},
		{database.ConfigKeyZoneTTL, "ten"},
		{database.ConfigKeyServerPort, "70000"},
		{database.ConfigKeyLoggingFormat, "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := config.Default()
			db := openSeededDB(t, cfg)
			h := handlers.New(cfg, nil, handlers.Options{DB: db})
			prev, err := db.GetConfig(tt.key)
			require.NoError(t, err)

			w := do(setupTestRouter(h), http.MethodPut, "/api/v1/settings/"+tt.key, `{"value":"`+tt.value+`"}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			stored, err := db.GetConfig(tt.key)
			require.NoError(t, err)
			assert.Equal(t, prev, stored)
		})
	}
}

func TestPutSettingRestoresMissingKey(t *testing.T) {
	cfg := config.Default()
	db := openSeededDB(t, cfg)
	require.NoError(t, db.DeleteConfig(database.ConfigKeyZoneTTL))
	h := handlers.New(cfg, nil, handlers.Options{DB: db})

	w := do(setupTestRouter(h), http.MethodPut, "/api/v1/settings/zone.ttl", `{"value":"ten"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, err := db.GetConfig(database.ConfigKeyZoneTTL)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPutSettingUnknownKey(t *testing.T) {
	cfg := config.Default()
	h := handlers.New(cfg, nil, handlers.Options{DB: openSeededDB(t, cfg)})

	w := do(setupTestRouter(h), http.MethodPut, "/api/v1/settings/upstream.servers", `{"value":"8.8.8.8"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutSettingBadBody(t *testing.T) {
	cfg := config.Default()
	h := handlers.New(cfg, nil, handlers.Options{DB: openSeededDB(t, cfg)})

	w := do(setupTestRouter(h), http.MethodPut, "/api/v1/settings/zone.ttl", `{"value":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutSettingRedactsAPIKey(t *testing.T) {
	cfg := config.Default()
	h := handlers.New(cfg, nil, handlers.Options{DB: openSeededDB(t, cfg)})

	w := do(setupTestRouter(h), http.MethodPut, "/api/v1/settings/api.api_key", `{"value":"new-secret"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "new-secret")
}
