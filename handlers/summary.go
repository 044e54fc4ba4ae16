package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/reference"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/logger"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	summaryGoalCap       = 100
	summaryAssessmentCap = 10
	summaryReviewCap     = 10
)

// Summary is the dashboard aggregator: the static reference tables plus, when
// a designer_id is given, that designer's goals, assessments and reviews.
// Three independent fetches, no caching.
func (h *API) Summary(c *gin.Context) {
	out := gin.H{
		"competencies":  reference.Competencies,
		"career_levels": reference.CareerLevels,
	}
	designerID := c.Query("designer_id")
	if designerID == "" {
		c.JSON(http.StatusOK, out)
		return
	}

	filter := bson.M{"designer_id": designerID}
	goals, err := h.fetch(c, goalCollection, filter, summaryGoalCap)
	if err != nil {
		h.summaryError(c, err)
		return
	}
	assessments, err := h.fetch(c, assessmentCollection, filter, summaryAssessmentCap)
	if err != nil {
		h.summaryError(c, err)
		return
	}
	reviews, err := h.fetch(c, reviewCollection, filter, summaryReviewCap)
	if err != nil {
		h.summaryError(c, err)
		return
	}

	out["goals"] = goals
	out["assessments"] = assessments
	out["reviews"] = reviews
	c.JSON(http.StatusOK, out)
}

func (h *API) summaryError(c *gin.Context, err error) {
	metrics.StoreErrors.WithLabelValues("list").Inc()
	logger.Errorf("summary: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
