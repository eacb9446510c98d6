package handler

import (
	"campaign-intake/internal/apierrors"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/progress"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ViewerProvider returns the progress viewer bound to an auth session
type ViewerProvider interface {
	Viewer(ctx context.Context, sessionID string) *progress.Viewer
}

type Handler struct {
	viewers ViewerProvider
	logger  *observability.Logger
}

func New(viewers ViewerProvider, logger *observability.Logger) Handler {
	return Handler{
		viewers: viewers,
		logger:  logger,
	}
}

// SelectClientRequest represents the body of PUT progress/client
type SelectClientRequest struct {
	ClientID string `json:"client_id"`
}

// HandleGetProgress initializes the viewer until it is ready and returns its
// state. A connection failure is part of the returned state, not an error response.
func (h *Handler) HandleGetProgress(c *gin.Context) {
	ctx := c.Request.Context()
	v, ok := h.getViewer(c)
	if !ok {
		return
	}

	if v.State().State != progress.StateReady {
		if err := v.Initialize(ctx); err != nil {
			h.logger.InfoWithError(ctx, "progress view initialized with connection error", err)
		}
	}
	c.JSON(http.StatusOK, v.State())
}

// HandleSelectClient switches the client whose campaigns are shown
func (h *Handler) HandleSelectClient(c *gin.Context) {
	v, ok := h.getViewer(c)
	if !ok {
		return
	}

	var req SelectClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "client_id", Value: req.ClientID})
	h.respond(c, v, v.SelectClient(ctx, req.ClientID))
}

// HandleRefresh re-fetches the selected client's campaigns
func (h *Handler) HandleRefresh(c *gin.Context) {
	v, ok := h.getViewer(c)
	if !ok {
		return
	}
	h.respond(c, v, v.Refresh(c.Request.Context()))
}

// HandleDismissNotice clears the fetch failure notice
func (h *Handler) HandleDismissNotice(c *gin.Context) {
	v, ok := h.getViewer(c)
	if !ok {
		return
	}
	v.DismissNotice()
	c.JSON(http.StatusOK, v.State())
}

// respond maps connectivity failures to an error response. Fetch failures
// are already recorded as a notice in the view.
func (h *Handler) respond(c *gin.Context, v *progress.Viewer, err error) {
	var connErr *progress.ConnectivityError
	if errors.As(err, &connErr) {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, v.State())
}

func (h *Handler) getViewer(c *gin.Context) (*progress.Viewer, bool) {
	sessionID := c.GetString("Session-ID")
	if sessionID == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Session not found in context"))
		return nil, false
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "session_id", Value: sessionID})
	return h.viewers.Viewer(ctx, sessionID), true
}
