package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/MrWebMD/hamurai-name-server/internal/api/models"
)

// Embedded status page.
//
// internal/api/dist/browser/ holds a single self-contained index.html that
// polls /api/v1/zone and /api/v1/stats.
//
//go:embed dist/browser/*
var embeddedUI embed.FS

func getEmbedFs() (static.ServeFileSystem, error) {
	return static.EmbedFolder(embeddedUI, "dist/browser")
}

// MountSPA serves the embedded status page at / and falls back to it for
// unknown non-API paths. Unknown API paths get a JSON 404.
func MountSPA(r *gin.Engine, logger *slog.Logger) {
	distFS, err := getEmbedFs()
	if err != nil {
		logger.Error("embedded status page unavailable", "err", err)
		return
	}
	r.Use(static.Serve("/", distFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		index, err := distFS.Open("index.html")
		if err != nil {
			logger.Error("failed to open index.html", "err", err)
			c.Status(http.StatusNotFound)
			return
		}
		defer index.Close()
		stat, err := index.Stat()
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
	})
}
