package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	resourceCollection = "trainingresource"
	resourceListCap    = 200
)

func (h *API) CreateResource(c *gin.Context) {
	var req growth.CreateResource
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, resourceCollection, req.Document())
}

func (h *API) ListResources(c *gin.Context) {
	filter := bson.M{}
	// membership test against the tags array
	if tag := c.Query("tag"); tag != "" {
		filter["tags"] = bson.M{"$in": []string{tag}}
	}
	h.list(c, resourceCollection, filter, resourceListCap)
}
