package progress

//go:generate go run go.uber.org/mock/mockgen@latest -source=viewer.go -destination=mocks_test.go -package=progress

import (
	"campaign-intake/internal/campaign/processor"
	"campaign-intake/internal/clients/clickup"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// State is the lifecycle of a progress viewer
type State string

const (
	StateLoading         State = "loading"
	StateConnectionError State = "connection_error"
	StateReady           State = "ready"
)

const maxConcurrentUpdateFetches = 8

// ConnectivityError is the persistent failure of viewer initialization.
type ConnectivityError struct {
	Message string
	Err     error
}

func (e *ConnectivityError) Error() string {
	return e.Message
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// CampaignService defines the adapter calls used by the viewer
type CampaignService interface {
	TestConnection(ctx context.Context) processor.ConnectionResult
	ListClients(ctx context.Context) ([]store.Client, error)
	ListCampaignTasks(ctx context.Context, clientID string) ([]clickup.Task, error)
	ListTaskUpdates(ctx context.Context, taskID string) ([]processor.CampaignUpdate, error)
}

// Config controls presentation of the viewer
type Config struct {
	Locale string
	Now    func() time.Time
}

// Update is one entry of a campaign's timeline
type Update struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
	Label   string    `json:"label"`
}

// Campaign is the view model of one tracked task
type Campaign struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Status          Status    `json:"status"`
	RawStatus       string    `json:"raw_status"`
	LastUpdate      time.Time `json:"last_update"`
	LastUpdateLabel string    `json:"last_update_label"`
	Updates         []Update  `json:"updates"`
}

// View is a snapshot of the viewer for rendering
type View struct {
	State            State          `json:"state"`
	ConnectionError  string         `json:"connection_error,omitempty"`
	Clients          []store.Client `json:"clients"`
	SelectedClientID string         `json:"selected_client_id,omitempty"`
	Campaigns        []Campaign     `json:"campaigns"`
	Notice           string         `json:"notice,omitempty"`
	Refreshing       bool           `json:"refreshing"`
	Locale           string         `json:"locale"`
}

// Viewer shows the campaigns of one selected client. Network calls run
// without the lock held; results are applied only when their generation is
// still current.
type Viewer struct {
	mu      sync.Mutex
	service CampaignService
	labels  *Labeler
	now     func() time.Time
	logger  *observability.Logger

	state            State
	initializing     bool
	connectionError  string
	clients          []store.Client
	selectedClientID string
	campaigns        []Campaign
	notice           string
	refreshing       bool
	generation       uint64
	closed           bool
}

func New(service CampaignService, config Config, logger *observability.Logger) *Viewer {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &Viewer{
		service:   service,
		labels:    NewLabeler(config.Locale),
		now:       now,
		logger:    logger,
		state:     StateLoading,
		clients:   []store.Client{},
		campaigns: []Campaign{},
	}
}

// Initialize checks the tracker connection and loads the client list. Any
// failure moves the viewer to StateConnectionError; calling Initialize again
// from that state probes once more.
func (v *Viewer) Initialize(ctx context.Context) error {
	v.mu.Lock()
	if v.state == StateReady || v.initializing || v.closed {
		err := v.connectivityError()
		v.mu.Unlock()
		return err
	}
	v.initializing = true
	v.mu.Unlock()

	var clients []store.Client
	var connErr *ConnectivityError
	if result := v.service.TestConnection(ctx); !result.Success {
		connErr = &ConnectivityError{Message: result.Message}
	} else {
		var err error
		clients, err = v.service.ListClients(ctx)
		if err != nil {
			connErr = &ConnectivityError{Message: err.Error(), Err: err}
		}
	}

	v.mu.Lock()
	v.initializing = false
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	if connErr != nil {
		v.state = StateConnectionError
		v.connectionError = connErr.Message
		v.mu.Unlock()
		v.logger.Error(ctx, "progress viewer failed to initialize", connErr)
		return connErr
	}
	v.state = StateReady
	v.connectionError = ""
	v.clients = clients
	selected := v.selectedClientID
	v.mu.Unlock()

	v.logger.Info(ctx, "progress viewer ready")
	if selected != "" {
		return v.fetch(ctx, selected)
	}
	return nil
}

// SelectClient changes the selected client. An empty id clears the
// campaigns. Before initialization the selection is only recorded.
func (v *Viewer) SelectClient(ctx context.Context, clientID string) error {
	v.mu.Lock()
	v.selectedClientID = clientID
	if clientID == "" {
		v.generation++
		v.campaigns = []Campaign{}
		v.refreshing = false
		v.mu.Unlock()
		return nil
	}
	state := v.state
	err := v.connectivityError()
	v.mu.Unlock()

	switch state {
	case StateLoading:
		return nil
	case StateConnectionError:
		return err
	}
	return v.fetch(ctx, clientID)
}

// Refresh re-fetches the campaigns of the selected client.
func (v *Viewer) Refresh(ctx context.Context) error {
	v.mu.Lock()
	clientID := v.selectedClientID
	state := v.state
	err := v.connectivityError()
	v.mu.Unlock()

	if state == StateConnectionError {
		return err
	}
	if state != StateReady || clientID == "" {
		return nil
	}
	return v.fetch(ctx, clientID)
}

// DismissNotice clears the current notice
func (v *Viewer) DismissNotice() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice = ""
}

// State returns a snapshot of the viewer
func (v *Viewer) State() View {
	v.mu.Lock()
	defer v.mu.Unlock()

	clients := make([]store.Client, len(v.clients))
	copy(clients, v.clients)
	campaigns := make([]Campaign, len(v.campaigns))
	copy(campaigns, v.campaigns)

	return View{
		State:            v.state,
		ConnectionError:  v.connectionError,
		Clients:          clients,
		SelectedClientID: v.selectedClientID,
		Campaigns:        campaigns,
		Notice:           v.notice,
		Refreshing:       v.refreshing,
		Locale:           v.labels.Locale(),
	}
}

// Close discards the view; fetches still in flight are dropped on completion.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.generation++
	v.campaigns = []Campaign{}
	v.refreshing = false
}

func (v *Viewer) connectivityError() error {
	if v.state != StateConnectionError {
		return nil
	}
	return &ConnectivityError{Message: v.connectionError}
}

// fetch loads the tasks of clientID and all their updates, then replaces
// the campaigns in one step. A failure keeps the previous campaigns.
func (v *Viewer) fetch(ctx context.Context, clientID string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID})

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.generation++
	generation := v.generation
	v.refreshing = true
	v.mu.Unlock()

	campaigns, err := v.load(ctx, clientID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if generation != v.generation || v.selectedClientID != clientID {
		v.logger.Debug(ctx, "discarding stale campaign fetch")
		return nil
	}
	v.refreshing = false

	if err != nil {
		v.notice = err.Error()
		v.logger.Error(ctx, "failed to fetch campaigns", err)
		return err
	}
	v.campaigns = campaigns
	return nil
}

func (v *Viewer) load(ctx context.Context, clientID string) ([]Campaign, error) {
	tasks, err := v.service.ListCampaignTasks(ctx, clientID)
	if err != nil {
		return nil, err
	}

	updates := make([][]processor.CampaignUpdate, len(tasks))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentUpdateFetches)
	for i, task := range tasks {
		eg.Go(func() error {
			taskUpdates, err := v.service.ListTaskUpdates(egCtx, task.ID)
			if err != nil {
				return err
			}
			updates[i] = taskUpdates
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	now := v.now()
	campaigns := make([]Campaign, 0, len(tasks))
	for i, task := range tasks {
		campaigns = append(campaigns, v.present(task, updates[i], now))
	}
	return campaigns, nil
}

func (v *Viewer) present(task clickup.Task, updates []processor.CampaignUpdate, now time.Time) Campaign {
	key := ClassifyStatus(task.Status.Status)
	lastUpdate, _ := clickup.ParseTimestamp(task.DateUpdated)

	timeline := make([]Update, 0, len(updates))
	for _, u := range updates {
		timeline = append(timeline, Update{
			Date:    u.Date,
			Message: u.Message,
			Label:   v.labels.Relative(u.Date, now),
		})
	}

	return Campaign{
		ID:    task.ID,
		Title: task.Name,
		Status: Status{
			Key:   key,
			Label: v.labels.Status(key),
			Tone:  key.Tone(),
			Icon:  key.Icon(),
		},
		RawStatus:       task.Status.Status,
		LastUpdate:      lastUpdate,
		LastUpdateLabel: v.labels.Relative(lastUpdate, now),
		Updates:         timeline,
	}
}
