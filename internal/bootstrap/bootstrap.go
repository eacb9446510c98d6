package bootstrap

import (
	"campaign-intake/internal/config"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"context"
	"fmt"
	"os"

	analyticsHandler "campaign-intake/internal/analytics/handler"
	analyticsProcessor "campaign-intake/internal/analytics/processor"
	"campaign-intake/internal/auth/handler"
	"campaign-intake/internal/auth/processor"
	campaignHandler "campaign-intake/internal/campaign/handler"
	campaignProcessor "campaign-intake/internal/campaign/processor"
	"campaign-intake/internal/clients/clickup"
	"campaign-intake/internal/clients/mail"
	"campaign-intake/internal/directory"
	directoryHandler "campaign-intake/internal/directory/handler"
	"campaign-intake/internal/email"
	"campaign-intake/internal/progress"
	progressHandler "campaign-intake/internal/progress/handler"
	"campaign-intake/internal/wizard"
	wizardHandler "campaign-intake/internal/wizard/handler"
	"campaign-intake/internal/workspace"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Session-scoped wizards and viewers
	Workspaces *workspace.Registry

	// Handlers
	AuthHandler      handler.Handler
	CampaignHandler  campaignHandler.Handler
	WizardHandler    wizardHandler.Handler
	ProgressHandler  progressHandler.Handler
	DirectoryHandler directoryHandler.Handler
	AnalyticsHandler analyticsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// An unreachable database surfaces per request, not at startup
	if err := deps.Store.Ping(ctx); err != nil {
		logger.Warn(ctx, fmt.Sprintf("database not reachable at startup: %v", err))
	}

	// Initialize clients
	clickupClient := clickup.NewClient(clickup.Config{
		APIKey:  cfg.ClickUp.APIKey,
		ListID:  cfg.ClickUp.ListID,
		BaseURL: cfg.ClickUp.BaseURL,
		Timeout: cfg.ClickUp.Timeout,
	}, logger)

	// Submission e-mails are optional
	var notifier wizard.SubmissionNotifier
	if cfg.Services.NotificationsEnabled() {
		var mailOpts []mail.Option
		if cfg.Services.EmailReplyTo != "" {
			mailOpts = append(mailOpts, mail.WithReplyTo(cfg.Services.EmailReplyTo))
		}
		mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger, mailOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		notifier = email.New(
			mailClient,
			cfg.Services.DefaultEmailSender,
			cfg.Services.SubmissionNotifyEmail,
			cfg.Services.WebAppURI,
			logger,
		)
	} else {
		logger.Info(ctx, "submission notifications disabled")
	}

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, clickupClient, cfg.ClickUp.InitialStatus, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(authProc, handler.Config{
		LoginPath:    cfg.Auth.LoginPath,
		CookieName:   cfg.Auth.CookieName,
		SecureCookie: os.Getenv("GO_ENV") == "production",
	}, logger)

	// Initialize per-session wizards and viewers
	wizardConfig := wizard.Config{
		MaxImageBytes:  cfg.Wizard.MaxImageBytes,
		PreviewBaseURL: cfg.Services.WebAppURI,
	}
	deps.Workspaces = workspace.NewRegistry(
		authProc,
		func(ctx context.Context) *wizard.Wizard {
			return wizard.New(ctx, &campaignProc, notifier, wizardConfig, logger)
		},
		func() *progress.Viewer {
			return progress.New(&campaignProc, progress.Config{Locale: cfg.Services.Locale}, logger)
		},
		logger,
	)
	deps.WizardHandler = wizardHandler.New(deps.Workspaces, cfg.Wizard.MaxImageBytes, logger)
	deps.ProgressHandler = progressHandler.New(deps.Workspaces, logger)

	// Initialize directory and analytics
	deps.DirectoryHandler = directoryHandler.New(directory.New(&campaignProc, logger), logger)
	analyticsProc := analyticsProcessor.New(&campaignProc, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Workspaces != nil {
		d.Workspaces.Close()
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
