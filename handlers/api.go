package handlers

import (
	"errors"
	"net/http"

	"github.com/formdrop/formdrop/internal/database"
	"github.com/formdrop/formdrop/pkg/logger"
	"github.com/formdrop/formdrop/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Seeds returns the static seed list, read fresh on every call.
func (h *Handler) Seeds(c *gin.Context) {
	entries, err := h.seeds.Load(c.Request.Context())
	if err != nil {
		metrics.SeedReads.WithLabelValues("error").Inc()
		logger.Errorf("load seed data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to load seed data"})
		return
	}
	metrics.SeedReads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entries, "count": len(entries)})
}

// Users returns every stored record without its internal identifier.
func (h *Handler) Users(c *gin.Context) {
	list, err := h.records.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database not connected"})
			return
		}
		logger.Errorf("list records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": list, "count": len(list)})
}
