package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	reviewCollection = "review"
	reviewListCap    = 200
)

func (h *API) CreateReview(c *gin.Context) {
	var req growth.CreateReview
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, reviewCollection, req.Document())
}

func (h *API) ListReviews(c *gin.Context) {
	filter := bson.M{}
	if designerID := c.Query("designer_id"); designerID != "" {
		filter["designer_id"] = designerID
	}
	if cycle := c.Query("cycle"); cycle != "" {
		filter["cycle"] = cycle
	}
	h.list(c, reviewCollection, filter, reviewListCap)
}
