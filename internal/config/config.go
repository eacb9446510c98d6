package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	ClickUp  ClickUpConfig
	Services ServicesConfig
	Wizard   WizardConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds the identity provider settings used by the auth gate
type AuthConfig struct {
	JWTSecret  string
	LoginPath  string
	CookieName string
}

// ClickUpConfig holds the task-tracking service settings
type ClickUpConfig struct {
	APIKey        string
	ListID        string
	BaseURL       string
	InitialStatus string
	Timeout       time.Duration
}

// ServicesConfig holds optional collaborators and presentation settings
type ServicesConfig struct {
	WebAppURI             string
	ResendAPIKey          string
	DefaultEmailSender    string
	SubmissionNotifyEmail string
	EmailReplyTo          string
	Locale                string
}

// WizardConfig holds limits for the campaign intake form
type WizardConfig struct {
	MaxImageBytes int64
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("AUTH_JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.LoginPath = getEnvWithDefault("AUTH_LOGIN_PATH", "/login")
	cfg.Auth.CookieName = getEnvWithDefault("AUTH_COOKIE_NAME", "session")

	if cfg.ClickUp.APIKey, err = requireEnv("CLICKUP_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.ClickUp.ListID, err = requireEnv("CLICKUP_LIST_ID"); err != nil {
		return nil, err
	}
	cfg.ClickUp.BaseURL = getEnvWithDefault("CLICKUP_BASE_URL", "https://api.clickup.com/api/v2")
	cfg.ClickUp.InitialStatus = getEnvWithDefault("CLICKUP_INITIAL_STATUS", "request")
	timeoutSeconds, err := strconv.Atoi(getEnvWithDefault("CLICKUP_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CLICKUP_TIMEOUT_SECONDS: %w", err)
	}
	cfg.ClickUp.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	// Submission e-mails are optional; all three must be present to enable them.
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	cfg.Services.SubmissionNotifyEmail = os.Getenv("SUBMISSION_NOTIFY_EMAIL")
	cfg.Services.EmailReplyTo = os.Getenv("EMAIL_REPLY_TO")
	cfg.Services.Locale = getEnvWithDefault("LOCALE", "en-US")

	maxImageBytes := getEnvWithDefault("WIZARD_MAX_IMAGE_BYTES", "10485760")
	cfg.Wizard.MaxImageBytes, err = strconv.ParseInt(maxImageBytes, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WIZARD_MAX_IMAGE_BYTES: %w", err)
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// NotificationsEnabled reports whether submission e-mails can be sent.
func (s ServicesConfig) NotificationsEnabled() bool {
	return s.ResendAPIKey != "" && s.DefaultEmailSender != "" && s.SubmissionNotifyEmail != ""
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
