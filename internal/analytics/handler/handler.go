package handler

import (
	"campaign-intake/internal/analytics/processor"
	"campaign-intake/internal/apierrors"
	"campaign-intake/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetAnalyticsOverview returns campaign statistics, optionally for one client
func (h *Handler) HandleGetAnalyticsOverview(c *gin.Context) {
	ctx := c.Request.Context()

	overview, err := h.processor.GetAnalyticsOverview(ctx, c.Query("client_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
