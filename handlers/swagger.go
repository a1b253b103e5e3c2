package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>formdrop — Swagger</title>
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

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "formdrop", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "SeedEntry": { "type": "object", "properties": { "id": {"type":"integer"}, "name": {"type":"string"}, "email": {"type":"string"} } },
      "Record": { "type": "object", "properties": { "name": {"type":"string"}, "email": {"type":"string"}, "age": {"type":"integer"}, "city": {"type":"string"}, "created_at": {"type":"string","format":"date-time"} } },
      "Error": { "type": "object", "properties": { "status": {"type":"string","enum":["error"]}, "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Submission form", "responses": { "200": { "description": "HTML form" } } } },
    "/submit": {
      "post": {
        "summary": "Store one submission",
        "requestBody": { "content": { "application/x-www-form-urlencoded": { "schema": {"type":"object","required":["name","email"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"age":{"type":"string"},"city":{"type":"string"}}}}}},
        "responses": { "303": { "description": "redirect to /success" }, "400": { "description": "missing field or invalid age" }, "429": { "description": "rate limited" }, "503": { "description": "database not connected" } }
      }
    },
    "/success": { "get": { "summary": "Confirmation page", "responses": { "200": { "description": "HTML" } } } },
    "/api": { "get": { "summary": "Static seed data", "responses": { "200": { "description": "{status, data: SeedEntry[], count}" }, "500": { "description": "Error" } } } },
    "/api/users": { "get": { "summary": "All stored records", "responses": { "200": { "description": "{status, data: Record[], count}" }, "500": { "description": "Error" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
