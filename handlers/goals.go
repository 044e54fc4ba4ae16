package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	goalCollection = "goal"
	goalListCap    = 500
)

func (h *API) CreateGoal(c *gin.Context) {
	var req growth.CreateGoal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, goalCollection, req.Document())
}

func (h *API) ListGoals(c *gin.Context) {
	filter := bson.M{}
	if designerID := c.Query("designer_id"); designerID != "" {
		filter["designer_id"] = designerID
	}
	h.list(c, goalCollection, filter, goalListCap)
}
