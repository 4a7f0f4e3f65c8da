package api

import (
	"net/http"
	"time"

	"peakform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InsightsHandler holds the insights service dependency.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetDashboard recomputes and returns every derived series for the current
// day. Charts render the payload directly; there is no server-side cache.
func (h *InsightsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	dashboard, err := h.insightsService.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		logrus.Errorf("dashboard: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
