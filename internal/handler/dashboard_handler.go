package handler

import (
	"log/slog"
	"net/http"

	"github.com/flagon1004/market-dashboard/internal/model"
	"github.com/gin-gonic/gin"
)

type DashboardStore interface {
	Load() (*model.Dashboard, error)
}

type DashboardHandler struct {
	repository DashboardStore
}

func NewDashboardHandler(repository DashboardStore) *DashboardHandler {
	return &DashboardHandler{repository: repository}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.repository.Load()
	if err != nil {
		slog.Error("error loading dashboard", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Dashboard not generated yet"})
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	if _, err := h.repository.Load(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"dashboard": "missing",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"dashboard": "ready",
	})
}
