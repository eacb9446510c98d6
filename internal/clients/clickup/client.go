package clickup

import (
	"bytes"
	"campaign-intake/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.clickup.com/api/v2"
	unknownError   = "Unknown error"
)

// APIError is returned for every non-2xx response from ClickUp.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ClickUp API Error: %s", e.Message)
}

// Config holds the settings needed to talk to one ClickUp list
type Config struct {
	APIKey  string
	ListID  string
	BaseURL string
	Timeout time.Duration
}

// Client is a thin typed wrapper over the ClickUp v2 REST API
type Client struct {
	apiKey     string
	listID     string
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new ClickUp client bound to a single list
func NewClient(cfg Config, logger *observability.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		listID:  cfg.ListID,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// List is the subset of a ClickUp list used as a connectivity probe
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskStatus is the lifecycle label ClickUp attaches to a task
type TaskStatus struct {
	Status string `json:"status"`
	Color  string `json:"color"`
}

// Task is a campaign work item as returned by ClickUp
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      TaskStatus `json:"status"`
	DateCreated string     `json:"date_created"`
	DateUpdated string     `json:"date_updated"`
}

// Comment is one entry of a task's comment thread
type Comment struct {
	CommentText string `json:"comment_text"`
	Date        string `json:"date"`
}

// CreateTaskRequest is the body of POST /list/{id}/task
type CreateTaskRequest struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	Status              string `json:"status"`
	MarkdownDescription bool   `json:"markdown_description"`
}

type tasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type commentsResponse struct {
	Comments []Comment `json:"comments"`
}

type errorEnvelope struct {
	Err   string `json:"err"`
	ECode string `json:"ECODE"`
}

// GetList fetches the configured list; used to verify credentials and list id.
func (c *Client) GetList(ctx context.Context) (List, error) {
	var list List
	if err := c.do(ctx, http.MethodGet, "/list/"+url.PathEscape(c.listID), nil, &list); err != nil {
		return List{}, err
	}
	return list, nil
}

// GetTasks returns every task of the configured list in ClickUp's native order.
func (c *Client) GetTasks(ctx context.Context) ([]Task, error) {
	var resp tasksResponse
	if err := c.do(ctx, http.MethodGet, "/list/"+url.PathEscape(c.listID)+"/task", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Tasks == nil {
		return []Task{}, nil
	}
	return resp.Tasks, nil
}

// CreateTask creates a task in the configured list and returns it.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/list/"+url.PathEscape(c.listID)+"/task", req, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// GetTaskComments returns a task's comments; a task without comments yields an empty slice.
func (c *Client) GetTaskComments(ctx context.Context, taskID string) ([]Comment, error) {
	var resp commentsResponse
	if err := c.do(ctx, http.MethodGet, "/task/"+url.PathEscape(taskID)+"/comment", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Comments == nil {
		return []Comment{}, nil
	}
	return resp.Comments, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "clickup_method", Value: method},
		observability.Field{Key: "clickup_path", Value: path},
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.logger.Error(ctx, "failed to marshal clickup request", err)
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.logger.Error(ctx, "failed to create clickup request", err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", authorizationHeader(c.apiKey))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call clickup", err)
		return fmt.Errorf("failed to call clickup: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "failed to read clickup response", err)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: unknownError}
		var envelope errorEnvelope
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Err != "" {
			apiErr.Message = envelope.Err
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "status_code", Value: resp.StatusCode})
		c.logger.Error(ctx, "clickup returned an error", apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		c.logger.Error(ctx, "failed to decode clickup response", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// authorizationHeader prefixes personal tokens with pk_ unless already present.
func authorizationHeader(apiKey string) string {
	if strings.HasPrefix(apiKey, "pk_") {
		return apiKey
	}
	return "pk_" + apiKey
}

// ErrInvalidTimestamp is returned for values that are not millisecond epochs.
var ErrInvalidTimestamp = errors.New("invalid clickup timestamp")

// ParseTimestamp converts ClickUp's millisecond epoch strings. RFC 3339 is
// accepted as well so fixtures and proxies can pass ISO dates.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
