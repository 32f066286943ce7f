package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPA serves files from StaticDir and falls back to index.html for every
// other GET so client-side routes resolve.
func (h *Handler) SPA(c *gin.Context) {
	p := c.Request.URL.Path
	if strings.HasPrefix(p, "/api/") || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		writeError(c, http.StatusNotFound, "Not found", nil)
		return
	}

	file := filepath.Join(h.StaticDir, filepath.FromSlash(path.Clean("/"+p)))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}
	c.File(filepath.Join(h.StaticDir, "index.html"))
}
