package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	guildCollection = "guild"
	guildListCap    = 200
)

func (h *API) CreateGuild(c *gin.Context) {
	var req growth.CreateGuild
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, guildCollection, req.Document())
}

func (h *API) ListGuilds(c *gin.Context) {
	h.list(c, guildCollection, bson.M{}, guildListCap)
}
