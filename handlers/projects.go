package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	projectCollection = "project"
	projectListCap    = 200
)

func (h *API) CreateProject(c *gin.Context) {
	var req growth.CreateProject
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, projectCollection, req.Document())
}

func (h *API) ListProjects(c *gin.Context) {
	filter := bson.M{}
	if managerID := c.Query("manager_id"); managerID != "" {
		filter["manager_id"] = managerID
	}
	// membership test against the designers array
	if designerID := c.Query("designer_id"); designerID != "" {
		filter["designers"] = bson.M{"$in": []string{designerID}}
	}
	h.list(c, projectCollection, filter, projectListCap)
}
