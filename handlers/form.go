package handlers

import (
	"errors"
	"net/http"

	"github.com/formdrop/formdrop/internal/database"
	"github.com/formdrop/formdrop/internal/record"
	"github.com/formdrop/formdrop/internal/record/service"
	"github.com/formdrop/formdrop/pkg/logger"
	"github.com/formdrop/formdrop/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const (
	msgRequired    = "Name and Email are required fields!"
	msgInvalidAge  = "Age must be a whole number."
	msgUnavailable = "Database connection error. Please try again later."
)

// Index renders the empty submission form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", FormView{})
}

// Submit validates the posted form and stores one record. Failures re-render
// the form with an error flash; the submitted values are not kept.
func (h *Handler) Submit(c *gin.Context) {
	sub := record.Submission{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Age:   c.PostForm("age"),
		City:  c.PostForm("city"),
	}
	_, err := h.records.Submit(c.Request.Context(), sub)
	switch {
	case err == nil:
		metrics.Submissions.WithLabelValues("stored").Inc()
		c.Redirect(http.StatusSeeOther, "/success")
	case errors.Is(err, service.ErrMissingField):
		metrics.Submissions.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusBadRequest, "index.html", errorFlash(msgRequired))
	case errors.Is(err, service.ErrInvalidAge):
		metrics.Submissions.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusBadRequest, "index.html", errorFlash(msgInvalidAge))
	case errors.Is(err, database.ErrNotConnected):
		metrics.Submissions.WithLabelValues("unavailable").Inc()
		logger.Warnf("submit: %v", err)
		c.HTML(http.StatusServiceUnavailable, "index.html", errorFlash(msgUnavailable))
	default:
		metrics.Submissions.WithLabelValues("failed").Inc()
		logger.Errorf("submit: %v", err)
		c.HTML(http.StatusInternalServerError, "index.html", errorFlash("Error submitting data: "+err.Error()))
	}
}

// Success renders the confirmation page.
func (h *Handler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", nil)
}
