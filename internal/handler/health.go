package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AI Interviewer backend is running."})
}

func (h *Handler) MetricsSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.Metrics.GetSnapshot())
}
