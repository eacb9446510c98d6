package wizard

//go:generate go run go.uber.org/mock/mockgen@latest -source=wizard.go -destination=mocks_test.go -package=wizard

import (
	"campaign-intake/internal/campaign/processor"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidTransition = errors.New("action not allowed on the current step")
	ErrClientRequired    = errors.New("a client must be selected before submitting")
	ErrUnknownClient     = errors.New("client is not in the client list")
	ErrImagesIncomplete  = errors.New("every image needs a description")
	ErrImageNotFound     = errors.New("image not found")
	ErrUnsupportedImage  = errors.New("only JPEG and PNG images are accepted")
	ErrImageTooLarge     = errors.New("image exceeds the size limit")
	ErrEmptyImage        = errors.New("image is empty")
)

// NoticeClientsUnavailable is shown when the client list could not be loaded
const NoticeClientsUnavailable = "Error loading clients"

// ProgressPath is where the user is sent after a successful submission
const ProgressPath = "/progress"

const defaultMaxImageBytes = 10 << 20

var acceptedImageTypes = []string{"image/jpeg", "image/png"}

// CampaignAdapter defines the service calls required by the wizard
type CampaignAdapter interface {
	ListClients(ctx context.Context) ([]store.Client, error)
	GetClient(ctx context.Context, clientID string) (store.Client, error)
	CreateCampaignTask(ctx context.Context, draft processor.CampaignDraft, clientID string) (string, error)
	LinkCampaignTask(ctx context.Context, clientID, taskID string) error
}

// SubmissionNotifier is told about every successful submission
type SubmissionNotifier interface {
	NotifySubmission(ctx context.Context, submission Submission) error
}

// Submission describes a campaign that was just handed to the tracker
type Submission struct {
	TaskID     string
	ClientID   string
	ClientName string
	Draft      processor.CampaignDraft
}

// Config holds per-wizard limits
type Config struct {
	MaxImageBytes int64
	// PreviewBaseURL prefixes image links embedded in the task description.
	PreviewBaseURL string
}

// SubmitResult is returned by a successful Submit
type SubmitResult struct {
	TaskID   string `json:"task_id"`
	Redirect string `json:"redirect"`
}

// Wizard is the intake state machine of one session
type Wizard struct {
	mu       sync.Mutex
	adapter  CampaignAdapter
	notifier SubmissionNotifier
	previews *PreviewStore
	config   Config
	logger   *observability.Logger

	step          Step
	draft         Draft
	clients       []store.Client
	clientsLoaded bool
	// lookedUp is a client verified one by one while the list was unavailable.
	lookedUp store.Client
	notice        string

	// pendingTaskID is a task created by a submission whose link failed.
	pendingTaskID string
}

// New creates a wizard on its first step and loads the client list.
// A load failure becomes a notice and does not block the form; the list is
// loaded again on reset and on reaching the review step.
func New(ctx context.Context, adapter CampaignAdapter, notifier SubmissionNotifier, config Config, logger *observability.Logger) *Wizard {
	if config.MaxImageBytes <= 0 {
		config.MaxImageBytes = defaultMaxImageBytes
	}
	w := &Wizard{
		adapter:  adapter,
		notifier: notifier,
		previews: NewPreviewStore(),
		config:   config,
		logger:   logger,
		step:     StepProductDetails,
		draft:    Draft{Images: []Image{}},
		clients:  []store.Client{},
	}

	w.loadClients(ctx)
	return w
}

// loadClients replaces the client list; callers hold w.mu or own w.
func (w *Wizard) loadClients(ctx context.Context) {
	clients, err := w.adapter.ListClients(ctx)
	if err != nil {
		w.logger.Error(ctx, "failed to load clients for wizard", err)
		w.clientsLoaded = false
		w.notice = NoticeClientsUnavailable
		return
	}
	w.clients = clients
	w.clientsLoaded = true
	if w.notice == NoticeClientsUnavailable {
		w.notice = ""
	}
}

// ImageView is an image as shown on the upload and review steps
type ImageView struct {
	Image
	PreviewURL       string `json:"preview_url"`
	DescriptionValid bool   `json:"description_valid"`
}

// ReviewView holds the labels rendered on the review step
type ReviewView struct {
	CategoryLabel  string `json:"category_label"`
	ObjectiveLabel string `json:"objective_label"`
	TargetAudience string `json:"target_audience"`
	Budget         string `json:"budget"`
}

// View is a snapshot of the wizard for rendering
type View struct {
	Step                 Step                `json:"step"`
	ProductDetails       *ProductDetails     `json:"product_details,omitempty"`
	CampaignObjectives   *CampaignObjectives `json:"campaign_objectives,omitempty"`
	Images               []ImageView         `json:"images"`
	ClientID             string              `json:"client_id,omitempty"`
	Clients              []store.Client      `json:"clients"`
	CanAdvanceFromImages bool                `json:"can_advance_from_images"`
	Review               *ReviewView         `json:"review,omitempty"`
	Notice               string              `json:"notice,omitempty"`
	CategoryOptions      []Option            `json:"category_options"`
	ObjectiveOptions     []Option            `json:"objective_options"`
	PendingTaskCreated   bool                `json:"pending_task_created"`
}

// State returns a snapshot of the wizard
func (w *Wizard) State() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	images := make([]ImageView, 0, len(w.draft.Images))
	for _, img := range w.draft.Images {
		images = append(images, ImageView{
			Image:            img,
			PreviewURL:       w.previewURL(img.ID),
			DescriptionValid: img.described(),
		})
	}

	clients := make([]store.Client, len(w.clients))
	copy(clients, w.clients)

	view := View{
		Step:                 w.step,
		ProductDetails:       w.draft.ProductDetails,
		CampaignObjectives:   w.draft.CampaignObjectives,
		Images:               images,
		ClientID:             w.draft.ClientID,
		Clients:              clients,
		CanAdvanceFromImages: w.canAdvanceFromImages(),
		Notice:               w.notice,
		CategoryOptions:      CategoryOptions(),
		ObjectiveOptions:     ObjectiveOptions(),
		PendingTaskCreated:   w.pendingTaskID != "",
	}

	if w.step == StepReview {
		review := &ReviewView{CategoryLabel: UnspecifiedLabel, ObjectiveLabel: UnspecifiedLabel}
		if pd := w.draft.ProductDetails; pd != nil {
			review.CategoryLabel = pd.Category.Label()
		}
		if co := w.draft.CampaignObjectives; co != nil {
			review.ObjectiveLabel = co.Objective.Label()
			review.TargetAudience = co.TargetAudience
			review.Budget = co.Budget
		}
		view.Review = review
	}

	return view
}

// Step returns the current step
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SubmitProductDetails validates the first step and advances.
func (w *Wizard) SubmitProductDetails(ctx context.Context, input ProductDetailsInput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepProductDetails); err != nil {
		return err
	}
	if err := validateInput(input); err != nil {
		return err
	}

	w.draft.ProductDetails = &ProductDetails{Category: Category(input.Category)}
	w.draftChanged()
	w.advance(ctx)
	return nil
}

// SubmitCampaignObjectives validates the second step and advances.
func (w *Wizard) SubmitCampaignObjectives(ctx context.Context, input CampaignObjectivesInput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepCampaignObjectives); err != nil {
		return err
	}
	if err := validateInput(input); err != nil {
		return err
	}

	w.draft.CampaignObjectives = &CampaignObjectives{
		Objective:      Objective(input.Objective),
		TargetAudience: input.TargetAudience,
		Budget:         input.Budget,
	}
	w.draftChanged()
	w.advance(ctx)
	return nil
}

// AddImage sniffs and stores an uploaded file. Only JPEG and PNG are accepted.
func (w *Wizard) AddImage(ctx context.Context, filename string, data []byte) (ImageView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepImageUpload); err != nil {
		return ImageView{}, err
	}
	if len(data) == 0 {
		return ImageView{}, ErrEmptyImage
	}
	if int64(len(data)) > w.config.MaxImageBytes {
		return ImageView{}, ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), acceptedImageTypes...) {
		ctx = observability.WithFields(ctx, observability.Field{Key: "content_type", Value: mtype.String()})
		w.logger.Info(ctx, "rejected unsupported image")
		return ImageView{}, ErrUnsupportedImage
	}

	id := w.previews.Create(data, mtype.String())
	img := Image{
		ID:          id,
		Filename:    filename,
		ContentType: mtype.String(),
		Size:        len(data),
	}
	w.draft.Images = append(w.draft.Images, img)
	w.draftChanged()

	return ImageView{Image: img, PreviewURL: w.previewURL(id)}, nil
}

// SetImageDescription updates the description of one image.
func (w *Wizard) SetImageDescription(id, description string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepImageUpload); err != nil {
		return err
	}
	i := w.draft.imageIndex(id)
	if i < 0 {
		return ErrImageNotFound
	}
	w.draft.Images[i].Description = description
	w.draftChanged()
	return nil
}

// RemoveImage drops one image together with its description and preview handle.
func (w *Wizard) RemoveImage(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepImageUpload); err != nil {
		return err
	}
	i := w.draft.imageIndex(id)
	if i < 0 {
		return ErrImageNotFound
	}

	w.previews.Release(id)
	w.draft.Images = append(w.draft.Images[:i:i], w.draft.Images[i+1:]...)
	w.draftChanged()

	ctx = observability.WithFields(ctx, observability.Field{Key: "image_id", Value: id})
	w.logger.Debug(ctx, "image removed")
	return nil
}

// Preview returns the stored bytes of an image
func (w *Wizard) Preview(id string) (Preview, error) {
	p, ok := w.previews.Get(id)
	if !ok {
		return Preview{}, ErrImageNotFound
	}
	return p, nil
}

// CanAdvanceFromImages reports whether every image has a long enough description.
func (w *Wizard) CanAdvanceFromImages() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canAdvanceFromImages()
}

func (w *Wizard) canAdvanceFromImages() bool {
	for _, img := range w.draft.Images {
		if !img.described() {
			return false
		}
	}
	return true
}

// SubmitImages advances to review when every image is described.
func (w *Wizard) SubmitImages(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepImageUpload); err != nil {
		return err
	}
	if !w.canAdvanceFromImages() {
		fields := make(map[string]string)
		for _, img := range w.draft.Images {
			if !img.described() {
				fields[imageDescriptionField(img.ID)] = msgDescription
			}
		}
		return &ValidationError{Fields: fields, Err: ErrImagesIncomplete}
	}

	if !w.clientsLoaded {
		w.loadClients(ctx)
	}
	w.advance(ctx)
	return nil
}

// Back moves exactly one step back without re-validating.
func (w *Wizard) Back(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev, ok := w.step.previous()
	if !ok {
		return ErrInvalidTransition
	}
	w.step = prev
	w.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "step", Value: string(prev)}), "wizard moved back")
	return nil
}

// SelectClient sets the client the campaign is submitted for. Without a
// loaded client list the id is checked against the store directly.
func (w *Wizard) SelectClient(ctx context.Context, clientID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepReview); err != nil {
		return err
	}
	if clientID == "" {
		return ErrClientRequired
	}
	if w.clientsLoaded {
		if w.findClient(clientID) == nil {
			return ErrUnknownClient
		}
	} else {
		client, err := w.adapter.GetClient(ctx, clientID)
		if errors.Is(err, processor.ErrClientNotFound) {
			return ErrUnknownClient
		}
		if err != nil {
			return err
		}
		w.lookedUp = client
	}
	w.draft.ClientID = clientID
	return nil
}

// Submit creates the campaign task for the selected client. On success the
// draft is discarded; on failure it is kept so the user can retry. When a
// previous attempt created the task but failed to link it, only the link is retried.
func (w *Wizard) Submit(ctx context.Context) (SubmitResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStep(StepReview); err != nil {
		return SubmitResult{}, err
	}
	if w.draft.ClientID == "" {
		return SubmitResult{}, ErrClientRequired
	}

	clientID := w.draft.ClientID
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID})
	draft := w.campaignDraft()

	var taskID string
	if w.pendingTaskID != "" {
		ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: w.pendingTaskID})
		if err := w.adapter.LinkCampaignTask(ctx, clientID, w.pendingTaskID); err != nil {
			w.logger.Error(ctx, "failed to link previously created task", err)
			return SubmitResult{}, err
		}
		taskID = w.pendingTaskID
	} else {
		id, err := w.adapter.CreateCampaignTask(ctx, draft, clientID)
		if err != nil {
			var linkErr *processor.LinkError
			if errors.As(err, &linkErr) {
				w.pendingTaskID = linkErr.TaskID
			}
			w.logger.Error(ctx, "failed to submit campaign", err)
			return SubmitResult{}, err
		}
		taskID = id
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID})
	w.logger.Info(ctx, "campaign submitted")

	w.notify(ctx, Submission{
		TaskID:     taskID,
		ClientID:   clientID,
		ClientName: w.clientName(clientID),
		Draft:      draft,
	})

	w.reset()
	w.loadClients(ctx)
	return SubmitResult{TaskID: taskID, Redirect: ProgressPath}, nil
}

// DismissNotice clears the current notice
func (w *Wizard) DismissNotice() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notice = ""
}

// Reset discards the draft, returns to the first step and reloads the
// client list.
func (w *Wizard) Reset(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
	w.loadClients(ctx)
}

// Close discards the draft and releases every preview handle.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

func (w *Wizard) notify(ctx context.Context, submission Submission) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.NotifySubmission(ctx, submission); err != nil {
		w.logger.Warn(ctx, fmt.Sprintf("submission notification failed: %v", err))
	}
}

func (w *Wizard) reset() {
	w.previews.ReleaseAll()
	w.draft = Draft{Images: []Image{}}
	w.step = StepProductDetails
	w.pendingTaskID = ""
	w.lookedUp = store.Client{}
}

func (w *Wizard) requireStep(step Step) error {
	if w.step != step {
		return ErrInvalidTransition
	}
	return nil
}

func (w *Wizard) advance(ctx context.Context) {
	if next, ok := w.step.next(); ok {
		w.step = next
		w.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "step", Value: string(next)}), "wizard advanced")
	}
}

// draftChanged forgets a pending task since it no longer matches the draft.
func (w *Wizard) draftChanged() {
	w.pendingTaskID = ""
}

func (w *Wizard) findClient(id string) *store.Client {
	for i := range w.clients {
		if w.clients[i].ID == id {
			return &w.clients[i]
		}
	}
	return nil
}

func (w *Wizard) clientName(id string) string {
	if c := w.findClient(id); c != nil {
		return c.Name
	}
	if w.lookedUp.ID == id {
		return w.lookedUp.Name
	}
	return ""
}

func (w *Wizard) previewURL(id string) string {
	return strings.TrimRight(w.config.PreviewBaseURL, "/") + "/api/protected/wizard/images/" + id + "/preview"
}

func (w *Wizard) campaignDraft() processor.CampaignDraft {
	var draft processor.CampaignDraft
	if pd := w.draft.ProductDetails; pd != nil {
		draft.Category = string(pd.Category)
	}
	if co := w.draft.CampaignObjectives; co != nil {
		draft.Objective = string(co.Objective)
		draft.TargetAudience = co.TargetAudience
		draft.Budget = co.Budget
	}
	draft.Images = make([]processor.DraftImage, 0, len(w.draft.Images))
	for _, img := range w.draft.Images {
		draft.Images = append(draft.Images, processor.DraftImage{
			URL:         w.previewURL(img.ID),
			Description: img.Description,
		})
	}
	return draft
}
