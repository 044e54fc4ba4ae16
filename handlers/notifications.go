package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	notificationCollection = "notification"
	notificationListCap    = 200
)

func (h *API) CreateNotification(c *gin.Context) {
	var req growth.CreateNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, notificationCollection, req.Document())
}

func (h *API) ListNotifications(c *gin.Context) {
	filter := bson.M{}
	if userID := c.Query("user_id"); userID != "" {
		filter["user_id"] = userID
	}
	h.list(c, notificationCollection, filter, notificationListCap)
}
