package handlers

import (
	"errors"
	"maps"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrWebMD/hamurai-name-server/internal/api/models"
	"github.com/MrWebMD/hamurai-name-server/internal/database"
)

const redactedValue = "********"

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the effective server configuration (API key redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	resp := models.ConfigResponse{Config: h.cfg.Redacted()}
	if h.opts.DB != nil {
		if v, err := h.opts.DB.GetVersion(); err == nil {
			resp.Version = &v
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetZone godoc
// @Summary Get the served zone
// @Description Returns the single record the server is authoritative for
// @Tags zone
// @Produce json
// @Success 200 {object} models.ZoneResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zone [get]
func (h *Handler) GetZone(c *gin.Context) {
	z := h.opts.Zone
	if z == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "no zone configured"})
		return
	}
	c.JSON(http.StatusOK, models.ZoneResponse{
		Domain:  z.Domain,
		Type:    "A",
		Class:   "IN",
		Address: z.Address.Addr.String(),
		TTL:     z.TTL,
		Record:  z.String(),
	})
}

// ListSettings godoc
// @Summary List stored settings
// @Description Returns every setting in the settings store (API key redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.SettingsResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [get]
func (h *Handler) ListSettings(c *gin.Context) {
	db := h.opts.DB
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "settings store disabled"})
		return
	}

	settings, err := db.GetAllConfig()
	if err != nil {
		h.logger.Error("failed to list settings", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read settings"})
		return
	}
	if v, ok := settings[database.ConfigKeyAPIKey]; ok && v != "" {
		settings[database.ConfigKeyAPIKey] = redactedValue
	}
	version, err := db.GetVersion()
	if err != nil {
		h.logger.Error("failed to read settings version", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read settings"})
		return
	}

	c.JSON(http.StatusOK, models.SettingsResponse{Settings: settings, Version: version})
}

// PutSetting godoc
// @Summary Update a stored setting
// @Description Validates and stores one setting. The running server is not changed; the value applies on restart.
// @Tags config
// @Accept json
// @Produce json
// @Param key path string true "Setting key, e.g. zone.address"
// @Param body body models.SettingRequest true "New value"
// @Success 200 {object} models.SettingResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings/{key} [put]
func (h *Handler) PutSetting(c *gin.Context) {
	db := h.opts.DB
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "settings store disabled"})
		return
	}
	key := c.Param("key")
	if !database.IsConfigKey(key) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown setting: " + key})
		return
	}
	var req models.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	prev, prevErr := db.GetConfig(key)
	if err := db.SetConfig(key, req.Value); err != nil {
		h.logger.Error("failed to store setting", "key", key, "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store setting"})
		return
	}

	// Validate the stored settings as a whole against a scratch copy.
	scratch := *h.cfg
	scratch.Logging.ExtraFields = maps.Clone(h.cfg.Logging.ExtraFields)
	if err := db.ApplyToConfig(&scratch); err != nil {
		h.restoreSetting(key, prev, prevErr)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	version, _ := db.GetVersion()
	value := req.Value
	if key == database.ConfigKeyAPIKey && value != "" {
		value = redactedValue
	}
	h.logger.Info("setting updated", "key", key, "version", version)
	c.JSON(http.StatusOK, models.SettingResponse{Key: key, Value: value, Version: version, RestartRequired: true})
}

func (h *Handler) restoreSetting(key, prev string, prevErr error) {
	var err error
	switch {
	case prevErr == nil:
		err = h.opts.DB.SetConfig(key, prev)
	case errors.Is(prevErr, database.ErrNotFound):
		err = h.opts.DB.DeleteConfig(key)
	default:
		return
	}
	if err != nil {
		h.logger.Error("failed to restore setting", "key", key, "err", err)
	}
}
