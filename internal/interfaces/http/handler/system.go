package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wms/backend/internal/infrastructure/persistence"
)

// Store reports connectivity and pool pressure of the relational store
type Store interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// SystemHandler handles health API endpoints
type SystemHandler struct {
	BaseHandler
	store Store
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(store Store) *SystemHandler {
	return &SystemHandler{store: store}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports liveness, store connectivity and connection pool pressure
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "database": "down"})
		return
	}

	body := gin.H{"ok": true, "database": "up"}
	if stats, err := h.store.Stats(); err == nil {
		body["pool"] = gin.H{
			"max_open":   stats.MaxOpenConnections,
			"open":       stats.OpenConnections,
			"in_use":     stats.InUse,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
		}
	}
	c.JSON(http.StatusOK, body)
}
