package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	designerCollection = "designer"
	designerListCap    = 200
)

func (h *API) CreateDesigner(c *gin.Context) {
	var req growth.CreateDesigner
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, designerCollection, req.Document())
}

func (h *API) ListDesigners(c *gin.Context) {
	h.list(c, designerCollection, bson.M{}, designerListCap)
}
