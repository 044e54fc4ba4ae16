package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/reference"
)

// GetReference serves the static career framework. The tables never change at
// runtime, so the response is identical across calls.
func (h *API) GetReference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"competencies":  reference.Competencies,
		"career_levels": reference.CareerLevels,
	})
}
