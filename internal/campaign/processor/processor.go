package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-intake/internal/clients/clickup"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"context"
	"errors"
	"fmt"
	"time"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	ListClients(ctx context.Context) ([]store.Client, error)
	GetClientByID(ctx context.Context, clientID string) (store.Client, error)
	CreateCampaignClient(ctx context.Context, clientID, taskID string) (store.CampaignClient, error)
	GetTaskIDsByClientID(ctx context.Context, clientID string) ([]string, error)
}

// TrackerClient defines the task-tracking calls required by CampaignProcessor
type TrackerClient interface {
	GetList(ctx context.Context) (clickup.List, error)
	GetTasks(ctx context.Context) ([]clickup.Task, error)
	CreateTask(ctx context.Context, req clickup.CreateTaskRequest) (clickup.Task, error)
	GetTaskComments(ctx context.Context, taskID string) ([]clickup.Comment, error)
}

// DefaultInitialStatus is the first lifecycle stage of a new campaign task
const DefaultInitialStatus = "request"

var ErrEmptyTaskID = errors.New("tracker returned a task without id")

// CampaignDraft is the validated wizard content used to build a task
type CampaignDraft struct {
	Category       string
	Objective      string
	TargetAudience string
	Budget         string
	Images         []DraftImage
}

// DraftImage is one product image of a draft
type DraftImage struct {
	URL         string
	Description string
}

// ConnectionResult is the outcome of a connectivity probe; it never carries an error.
type ConnectionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CampaignUpdate is a progress note derived from a task comment
type CampaignUpdate struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

type CampaignProcessor struct {
	store         CampaignStore
	tracker       TrackerClient
	initialStatus string
	logger        *observability.Logger
}

func New(store CampaignStore, tracker TrackerClient, initialStatus string, logger *observability.Logger) CampaignProcessor {
	if initialStatus == "" {
		initialStatus = DefaultInitialStatus
	}
	return CampaignProcessor{
		store:         store,
		tracker:       tracker,
		initialStatus: initialStatus,
		logger:        logger,
	}
}

// ListClients returns every client ordered by name
func (p *CampaignProcessor) ListClients(ctx context.Context) ([]store.Client, error) {
	clients, err := p.store.ListClients(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list clients", err)
		return nil, &StoreError{Op: "list clients", Err: err}
	}
	return clients, nil
}

// GetClient returns one client. An unknown id yields ErrClientNotFound.
func (p *CampaignProcessor) GetClient(ctx context.Context, clientID string) (store.Client, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID})

	client, err := p.store.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Client{}, ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to get client", err)
		return store.Client{}, &StoreError{Op: "get client", Err: err}
	}
	return client, nil
}

// TestConnection probes the configured list. Failures are reported in the result.
func (p *CampaignProcessor) TestConnection(ctx context.Context) ConnectionResult {
	list, err := p.tracker.GetList(ctx)
	if err != nil {
		remoteErr := &RemoteAPIError{Op: "get list", Err: err}
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "connection_error", Value: remoteErr.Error()},
		), "tracker connection test failed")
		return ConnectionResult{Success: false, Message: remoteErr.Error()}
	}
	return ConnectionResult{
		Success: true,
		Message: fmt.Sprintf("Successfully connected to ClickUp list: %s", list.Name),
	}
}

// CreateCampaignTask creates the tracking task for a draft and links it to the
// client. A link failure returns *LinkError; the remote task is not rolled back.
func (p *CampaignProcessor) CreateCampaignTask(ctx context.Context, draft CampaignDraft, clientID string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "client_id", Value: clientID},
		observability.Field{Key: "category", Value: draft.Category},
		observability.Field{Key: "image_count", Value: len(draft.Images)},
	)

	task, err := p.tracker.CreateTask(ctx, clickup.CreateTaskRequest{
		Name:                buildTaskName(draft),
		Description:         buildTaskDescription(draft),
		Status:              p.initialStatus,
		MarkdownDescription: true,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign task", err)
		return "", &RemoteAPIError{Op: "create task", Err: err}
	}
	if task.ID == "" {
		p.logger.Error(ctx, "failed to create campaign task", ErrEmptyTaskID)
		return "", &RemoteAPIError{Op: "create task", Err: ErrEmptyTaskID}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: task.ID})

	if err := p.LinkCampaignTask(ctx, clientID, task.ID); err != nil {
		var storeErr *StoreError
		errors.As(err, &storeErr)
		return "", &LinkError{TaskID: task.ID, Err: storeErr}
	}

	p.logger.Info(ctx, "campaign task created successfully")
	return task.ID, nil
}

// LinkCampaignTask records the association between a client and an existing task
func (p *CampaignProcessor) LinkCampaignTask(ctx context.Context, clientID, taskID string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "client_id", Value: clientID},
		observability.Field{Key: "task_id", Value: taskID},
	)

	if _, err := p.store.CreateCampaignClient(ctx, clientID, taskID); err != nil {
		p.logger.Error(ctx, "failed to link campaign task to client", err)
		return &StoreError{Op: "link campaign task", Err: err}
	}
	return nil
}

// ListCampaignTasks returns all tasks, or only the client's linked tasks when
// clientID is set. The tracker's order is preserved.
func (p *CampaignProcessor) ListCampaignTasks(ctx context.Context, clientID string) ([]clickup.Task, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID})

	tasks, err := p.tracker.GetTasks(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign tasks", err)
		return nil, &RemoteAPIError{Op: "list tasks", Err: err}
	}

	if clientID == "" {
		return tasks, nil
	}

	taskIDs, err := p.store.GetTaskIDsByClientID(ctx, clientID)
	if err != nil {
		p.logger.Error(ctx, "failed to get client task ids", err)
		return nil, &StoreError{Op: "get client task ids", Err: err}
	}

	linked := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		linked[id] = struct{}{}
	}

	filtered := make([]clickup.Task, 0, len(taskIDs))
	for _, task := range tasks {
		if _, ok := linked[task.ID]; ok {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// ListTaskUpdates returns the task's comments as updates in the tracker's order
func (p *CampaignProcessor) ListTaskUpdates(ctx context.Context, taskID string) ([]CampaignUpdate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID})

	comments, err := p.tracker.GetTaskComments(ctx, taskID)
	if err != nil {
		p.logger.Error(ctx, "failed to list task updates", err)
		return nil, &RemoteAPIError{Op: "list task comments", Err: err}
	}

	updates := make([]CampaignUpdate, 0, len(comments))
	for _, comment := range comments {
		date, err := clickup.ParseTimestamp(comment.Date)
		if err != nil {
			p.logger.Warn(ctx, "comment has an unparseable date")
		}
		updates = append(updates, CampaignUpdate{Date: date, Message: comment.CommentText})
	}
	return updates, nil
}
