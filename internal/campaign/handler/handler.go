package handler

import (
	"campaign-intake/internal/apierrors"
	"campaign-intake/internal/campaign/processor"
	"campaign-intake/internal/clients/clickup"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ClientResponse is a client as exposed to the frontend
type ClientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Company   string  `json:"company"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// CampaignTaskResponse is a tracker task as exposed to the frontend
type CampaignTaskResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	StatusColor string `json:"status_color,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
	DateUpdated string `json:"date_updated,omitempty"`
}

// CampaignUpdateResponse is one comment on a campaign task
type CampaignUpdateResponse struct {
	Date    *string `json:"date"`
	Message string  `json:"message"`
}

// HandleListClients returns every client ordered by name
func (h *Handler) HandleListClients(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.processor.ListClients(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": toClientResponses(clients)})
}

// HandleTestConnection reports whether the tracker list is reachable.
// The outcome is carried in the body, so this always answers 200.
func (h *Handler) HandleTestConnection(c *gin.Context) {
	result := h.processor.TestConnection(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": result.Success,
		"message": result.Message,
	})
}

// HandleListCampaigns returns the tracker tasks, filtered by the client_id query when given
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()
	clientID := c.Query("client_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID})

	tasks, err := h.processor.ListCampaignTasks(ctx, clientID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	response := make([]CampaignTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, toCampaignTaskResponse(task))
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": response})
}

// HandleListCampaignUpdates returns the comments of one campaign task
func (h *Handler) HandleListCampaignUpdates(c *gin.Context) {
	ctx := c.Request.Context()
	taskID := c.Param("task_id")
	if taskID == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "task_id is required"))
		return
	}

	updates, err := h.processor.ListTaskUpdates(ctx, taskID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	response := make([]CampaignUpdateResponse, 0, len(updates))
	for _, update := range updates {
		item := CampaignUpdateResponse{Message: update.Message}
		if !update.Date.IsZero() {
			formatted := update.Date.UTC().Format(time.RFC3339)
			item.Date = &formatted
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, gin.H{"updates": response})
}

func toClientResponses(clients []store.Client) []ClientResponse {
	response := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, ClientResponse{
			ID:        client.ID,
			Name:      client.Name,
			Company:   client.Company,
			AvatarURL: client.AvatarURL,
			Role:      client.Role,
		})
	}
	return response
}

func toCampaignTaskResponse(task clickup.Task) CampaignTaskResponse {
	return CampaignTaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Status:      task.Status.Status,
		StatusColor: task.Status.Color,
		DateCreated: task.DateCreated,
		DateUpdated: task.DateUpdated,
	}
}
