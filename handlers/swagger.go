package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>growthdesk — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the growth-platform API. Every entity exposes
// create + list only; there is no update or delete anywhere.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Designer Growth Platform API", "version": "v0.1.0" },
  "paths": {
    "/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "running" } } } },
    "/test": { "get": { "summary": "Store health report", "responses": { "200": { "description": "backend/database/collections status" } } } },
    "/api/reference": { "get": { "summary": "Static competencies and career levels", "responses": { "200": { "description": "reference tables" } } } },
    "/api/designers": {
      "post": { "summary": "Create designer", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List designers (cap 200)", "responses": { "200": { "description": "designer documents" } } }
    },
    "/api/goals": {
      "post": { "summary": "Create goal", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List goals, optional designer_id filter (cap 500)", "responses": { "200": { "description": "goal documents" } } }
    },
    "/api/assessments": {
      "post": { "summary": "Create skill assessment (ratings clamped to 1..4)", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List assessments for a designer_id (cap 100)", "responses": { "200": { "description": "assessment documents" } } }
    },
    "/api/reviews": {
      "post": { "summary": "Create performance review", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List reviews, optional designer_id and cycle filters (cap 200)", "responses": { "200": { "description": "review documents" } } }
    },
    "/api/guilds": {
      "post": { "summary": "Create guild", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List guilds (cap 200)", "responses": { "200": { "description": "guild documents" } } }
    },
    "/api/mentorships": {
      "post": { "summary": "Create mentorship", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List mentorships, optional mentor_id and mentee_id filters (cap 200)", "responses": { "200": { "description": "mentorship documents" } } }
    },
    "/api/resources": {
      "post": { "summary": "Create training resource", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List resources, optional tag membership filter (cap 200)", "responses": { "200": { "description": "resource documents" } } }
    },
    "/api/projects": {
      "post": { "summary": "Create project", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List projects, optional manager_id and designer_id filters (cap 200)", "responses": { "200": { "description": "project documents" } } }
    },
    "/api/notifications": {
      "post": { "summary": "Create notification log entry", "responses": { "200": { "description": "{id}" } } },
      "get": { "summary": "List notifications, optional user_id filter (cap 200)", "responses": { "200": { "description": "notification documents" } } }
    },
    "/api/summary": { "get": { "summary": "Dashboard summary for a designer_id", "responses": { "200": { "description": "reference tables plus goals/assessments/reviews" } } } }
  }
}`
