package handler

import (
	"campaign-intake/internal/apierrors"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/wizard"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WizardProvider returns the wizard bound to an auth session, creating it on first use
type WizardProvider interface {
	Wizard(ctx context.Context, sessionID string) *wizard.Wizard
}

type Handler struct {
	wizards       WizardProvider
	maxImageBytes int64
	logger        *observability.Logger
}

func New(wizards WizardProvider, maxImageBytes int64, logger *observability.Logger) Handler {
	return Handler{
		wizards:       wizards,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

// ImageDescriptionRequest represents the body of PUT wizard/images/:image_id/description
type ImageDescriptionRequest struct {
	Description string `json:"description"`
}

// SelectClientRequest represents the body of PUT wizard/client
type SelectClientRequest struct {
	ClientID string `json:"client_id"`
}

// HandleGetWizard returns the current wizard state
func (h *Handler) HandleGetWizard(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleDiscardWizard throws away the draft and starts over
func (h *Handler) HandleDiscardWizard(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}
	w.Reset(c.Request.Context())
	c.JSON(http.StatusOK, w.State())
}

// HandleSubmitProductDetails validates the first step
func (h *Handler) HandleSubmitProductDetails(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	var req wizard.ProductDetailsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := w.SubmitProductDetails(c.Request.Context(), req); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleSubmitCampaignObjectives validates the second step
func (h *Handler) HandleSubmitCampaignObjectives(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	var req wizard.CampaignObjectivesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := w.SubmitCampaignObjectives(c.Request.Context(), req); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleUploadImage accepts one multipart file in the "file" field
func (h *Handler) HandleUploadImage(c *gin.Context) {
	ctx := c.Request.Context()
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.InfoWithError(ctx, "image upload without file", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "A file is required in the 'file' field"))
		return
	}
	if h.maxImageBytes > 0 && fileHeader.Size > h.maxImageBytes {
		apierrors.RespondWithError(c, wizard.ErrImageTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded image", err)
		apierrors.RespondWithError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error(ctx, "failed to read uploaded image", err)
		apierrors.RespondWithError(c, err)
		return
	}

	image, err := w.AddImage(ctx, fileHeader.Filename, data)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// HandleSetImageDescription updates the description of one image
func (h *Handler) HandleSetImageDescription(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	var req ImageDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := w.SetImageDescription(c.Param("image_id"), req.Description); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleRemoveImage deletes one image and its preview
func (h *Handler) HandleRemoveImage(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	if err := w.RemoveImage(c.Request.Context(), c.Param("image_id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleGetImagePreview streams the stored image bytes
func (h *Handler) HandleGetImagePreview(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	preview, err := w.Preview(c.Param("image_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, preview.ContentType, preview.Data)
}

// HandleSubmitImages advances from the image step
func (h *Handler) HandleSubmitImages(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	if err := w.SubmitImages(c.Request.Context()); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleBack moves one step back
func (h *Handler) HandleBack(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	if err := w.Back(c.Request.Context()); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleSelectClient sets the client on the review step
func (h *Handler) HandleSelectClient(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	var req SelectClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := w.SelectClient(c.Request.Context(), req.ClientID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// HandleSubmit creates the campaign task for the selected client
func (h *Handler) HandleSubmit(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}

	result, err := w.Submit(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleDismissNotice clears the wizard notice
func (h *Handler) HandleDismissNotice(c *gin.Context) {
	w, ok := h.getWizard(c)
	if !ok {
		return
	}
	w.DismissNotice()
	c.Status(http.StatusNoContent)
}

var errMissingSession = errors.New("session id not found in context")

func (h *Handler) getWizard(c *gin.Context) (*wizard.Wizard, bool) {
	sessionID := c.GetString("Session-ID")
	if sessionID == "" {
		h.logger.Error(c.Request.Context(), "wizard request without session", errMissingSession)
		apierrors.RespondWithError(c, apierrors.Unauthorized("Session not found in context"))
		return nil, false
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "session_id", Value: sessionID})
	return h.wizards.Wizard(ctx, sessionID), true
}
