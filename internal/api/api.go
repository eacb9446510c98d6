package api

import (
	analyticsHandler "campaign-intake/internal/analytics/handler"
	authHandler "campaign-intake/internal/auth/handler"
	campaignHandler "campaign-intake/internal/campaign/handler"
	directoryHandler "campaign-intake/internal/directory/handler"
	progressHandler "campaign-intake/internal/progress/handler"
	wizardHandler "campaign-intake/internal/wizard/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	campaignHandler  campaignHandler.Handler
	wizardHandler    wizardHandler.Handler
	progressHandler  progressHandler.Handler
	directoryHandler directoryHandler.Handler
	analyticsHandler analyticsHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	wizardHandler wizardHandler.Handler,
	progressHandler progressHandler.Handler,
	directoryHandler directoryHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		campaignHandler:  campaignHandler,
		wizardHandler:    wizardHandler,
		progressHandler:  progressHandler,
		directoryHandler: directoryHandler,
		analyticsHandler: analyticsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/login", a.authHandler.HandleLogin)

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/session", a.authHandler.HandleCreateSession)
	}
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleAuthGate)
	{
		protectedGroup.POST("auth/signout", a.authHandler.HandleSignOut)
		protectedGroup.GET("events", a.authHandler.HandleEvents)
		protectedGroup.GET("shell", a.directoryHandler.HandleGetShell)

		protectedGroup.GET("clients", a.campaignHandler.HandleListClients)
		protectedGroup.GET("connection", a.campaignHandler.HandleTestConnection)
		protectedGroup.GET("campaigns", a.campaignHandler.HandleListCampaigns)
		protectedGroup.GET("campaigns/:task_id/updates", a.campaignHandler.HandleListCampaignUpdates)

		wizardGroup := protectedGroup.Group("/wizard")
		wizardGroup.GET("", a.wizardHandler.HandleGetWizard)
		wizardGroup.DELETE("", a.wizardHandler.HandleDiscardWizard)
		wizardGroup.POST("/product-details", a.wizardHandler.HandleSubmitProductDetails)
		wizardGroup.POST("/campaign-objectives", a.wizardHandler.HandleSubmitCampaignObjectives)
		wizardGroup.POST("/images", a.wizardHandler.HandleUploadImage)
		wizardGroup.POST("/images/submit", a.wizardHandler.HandleSubmitImages)
		wizardGroup.PUT("/images/:image_id/description", a.wizardHandler.HandleSetImageDescription)
		wizardGroup.DELETE("/images/:image_id", a.wizardHandler.HandleRemoveImage)
		wizardGroup.GET("/images/:image_id/preview", a.wizardHandler.HandleGetImagePreview)
		wizardGroup.POST("/back", a.wizardHandler.HandleBack)
		wizardGroup.PUT("/client", a.wizardHandler.HandleSelectClient)
		wizardGroup.POST("/submit", a.wizardHandler.HandleSubmit)
		wizardGroup.DELETE("/notice", a.wizardHandler.HandleDismissNotice)

		progressGroup := protectedGroup.Group("/progress")
		progressGroup.GET("", a.progressHandler.HandleGetProgress)
		progressGroup.PUT("/client", a.progressHandler.HandleSelectClient)
		progressGroup.POST("/refresh", a.progressHandler.HandleRefresh)
		progressGroup.DELETE("/notice", a.progressHandler.HandleDismissNotice)

		protectedGroup.GET("analytics", a.analyticsHandler.HandleGetAnalyticsOverview)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
