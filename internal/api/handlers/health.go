package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MrWebMD/hamurai-name-server/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health, instance ID and settings store status
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	resp := models.HealthResponse{Status: "ok", InstanceID: h.opts.InstanceID, Database: "disabled"}
	if h.opts.DB != nil {
		resp.Database = "ok"
		if err := h.opts.DB.Health(); err != nil {
			h.logger.Warn("settings store unhealthy", "err", err)
			resp.Status = "degraded"
			resp.Database = "error"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime, process and DNS reply statistics
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		InstanceID:    h.opts.InstanceID,
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       h.processStats(),
	}

	if h.opts.Stats != nil {
		snap := h.opts.Stats.Snapshot()
		resp.DNSStats = models.DNSStatsResponse{
			QueriesTotal:   snap.QueriesTotal,
			AnswersA:       snap.AnswersA,
			AnswersOPT:     snap.AnswersOPT,
			NotImplemented: snap.NotImplemented,
			NameErrors:     snap.NameErrors,
			ServerErrors:   snap.ServerErrors,
			Panics:         snap.Panics,
			BytesIn:        snap.BytesIn,
			BytesOut:       snap.BytesOut,
			AvgLatencyMs:   snap.AvgLatencyMs,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// processStats reads OS-level figures; fields that fail to read stay zero.
func (h *Handler) processStats() *models.ProcessStatsResponse {
	if h.proc == nil {
		return nil
	}
	out := &models.ProcessStatsResponse{}
	if mi, err := h.proc.MemoryInfo(); err == nil {
		out.RSSMB = float64(mi.RSS) / 1024 / 1024
	}
	if cpu, err := h.proc.CPUPercent(); err == nil {
		out.CPUPercent = cpu
	}
	if n, err := h.proc.NumThreads(); err == nil {
		out.NumThreads = n
	}
	return out
}
