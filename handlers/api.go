package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/docstore"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/logger"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
)

// API holds the handlers' dependencies. store is nil when the service started
// without a database connection; data routes then answer 500 while the health
// routes keep working.
type API struct {
	store docstore.Store
}

func NewAPI(store docstore.Store) *API {
	return &API{store: store}
}

// Register wires every route of the service onto the engine.
func (h *API) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)

	api := r.Group("/api")
	api.GET("/reference", h.GetReference)
	api.POST("/designers", h.CreateDesigner)
	api.GET("/designers", h.ListDesigners)
	api.POST("/goals", h.CreateGoal)
	api.GET("/goals", h.ListGoals)
	api.POST("/assessments", h.CreateAssessment)
	api.GET("/assessments", h.ListAssessments)
	api.POST("/reviews", h.CreateReview)
	api.GET("/reviews", h.ListReviews)
	api.POST("/guilds", h.CreateGuild)
	api.GET("/guilds", h.ListGuilds)
	api.POST("/mentorships", h.CreateMentorship)
	api.GET("/mentorships", h.ListMentorships)
	api.POST("/resources", h.CreateResource)
	api.GET("/resources", h.ListResources)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects", h.ListProjects)
	api.POST("/notifications", h.CreateNotification)
	api.GET("/notifications", h.ListNotifications)
	api.GET("/summary", h.Summary)
}

// create inserts a normalized document and responds {"id": "<hex>"}.
func (h *API) create(c *gin.Context, collection string, doc bson.M) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": docstore.ErrUnavailable.Error()})
		return
	}
	id, err := h.store.Create(c.Request.Context(), collection, doc)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("create").Inc()
		logger.Errorf("create %s: %v", collection, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	metrics.DocumentsCreated.WithLabelValues(collection).Inc()
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// list responds with a JSON array of matching documents, ids stringified.
func (h *API) list(c *gin.Context, collection string, filter bson.M, limit int64) {
	docs, err := h.fetch(c, collection, filter, limit)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("list").Inc()
		logger.Errorf("list %s: %v", collection, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// fetch is the raw list used by both list endpoints and the dashboard summary.
func (h *API) fetch(c *gin.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if h.store == nil {
		return nil, docstore.ErrUnavailable
	}
	metrics.ListQueries.WithLabelValues(collection).Inc()
	return h.store.List(c.Request.Context(), collection, filter, limit)
}
