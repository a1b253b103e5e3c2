package handlers

import (
	"github.com/formdrop/formdrop/internal/record/service"
	"github.com/formdrop/formdrop/internal/seed"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for the form and read routes.
type Handler struct {
	records *service.Service
	seeds   seed.Store
}

func NewHandler(records *service.Service, seeds seed.Store) *Handler {
	return &Handler{records: records, seeds: seeds}
}

// Register installs the page templates and the five application routes.
// submitMW runs in front of POST /submit only (rate limiting).
func (h *Handler) Register(r *gin.Engine, submitMW ...gin.HandlerFunc) {
	r.SetHTMLTemplate(Templates())

	r.GET("/", h.Index)
	r.GET("/success", h.Success)
	r.POST("/submit", append(submitMW, h.Submit)...)
	r.GET("/api", h.Seeds)
	r.GET("/api/users", h.Users)
}
