package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/growth"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	mentorshipCollection = "mentorship"
	mentorshipListCap    = 200
)

func (h *API) CreateMentorship(c *gin.Context) {
	var req growth.CreateMentorship
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.create(c, mentorshipCollection, req.Document())
}

func (h *API) ListMentorships(c *gin.Context) {
	filter := bson.M{}
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		filter["mentor_id"] = mentorID
	}
	if menteeID := c.Query("mentee_id"); menteeID != "" {
		filter["mentee_id"] = menteeID
	}
	h.list(c, mentorshipCollection, filter, mentorshipListCap)
}
