package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	assessmentCollection = "skillassessment"
	assessmentListCap    = 100
)

func (h *API) CreateAssessment(c *gin.Context) {
	var req growth.CreateAssessment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, assessmentCollection, req.Document())
}

func (h *API) ListAssessments(c *gin.Context) {
	designerID := c.Query("designer_id")
	if designerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "designer_id is required"})
		return
	}
	h.list(c, assessmentCollection, bson.M{"designer_id": designerID}, assessmentListCap)
}
