package handler

import (
	"campaign-intake/internal/directory"
	"campaign-intake/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	directory *directory.Directory
	logger    *observability.Logger
}

func New(directory *directory.Directory, logger *observability.Logger) Handler {
	return Handler{
		directory: directory,
		logger:    logger,
	}
}

// HandleGetShell returns navigation links and client cards
func (h *Handler) HandleGetShell(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Shell(c.Request.Context()))
}
