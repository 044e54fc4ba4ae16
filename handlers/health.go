package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status strings for /test. The dashboard frontend matches on them verbatim.
const (
	statusRunning      = "✅ Running"
	statusConnected    = "✅ Connected"
	statusNotConnected = "❌ Not Connected"
)

// Root answers the liveness probe.
func (h *API) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Designer Growth Platform API running"})
}

// TestDatabase reports three independent signals: process liveness, store
// connectivity and the existing collection names. A broken store is reported
// in the body, never as an HTTP error.
func (h *API) TestDatabase(c *gin.Context) {
	info := gin.H{
		"backend":     statusRunning,
		"database":    statusNotConnected,
		"collections": []string{},
	}
	if h.store != nil {
		names, err := h.store.Collections(c.Request.Context())
		if err != nil {
			info["database"] = "⚠️ " + truncate(err.Error(), 120)
		} else {
			info["database"] = statusConnected
			info["collections"] = names
		}
	}
	c.JSON(http.StatusOK, info)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
