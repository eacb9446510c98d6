package workspace

import (
	authProcessor "campaign-intake/internal/auth/processor"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/progress"
	"campaign-intake/internal/wizard"
	"context"
	"sync"
)

// AuthEvents is the subscription side of the session provider
type AuthEvents interface {
	OnAuthStateChange(fn func(authProcessor.AuthEvent)) *authProcessor.Subscription
}

// WizardFactory builds a fresh wizard for a session
type WizardFactory func(ctx context.Context) *wizard.Wizard

// ViewerFactory builds a fresh progress viewer for a session
type ViewerFactory func() *progress.Viewer

type workspace struct {
	mu     sync.Mutex
	wizard *wizard.Wizard
	viewer *progress.Viewer
}

// Registry holds the in-memory wizard and progress viewer of every signed-in
// session. A session's workspace is dropped when it signs out.
type Registry struct {
	mu           sync.Mutex
	workspaces   map[string]*workspace
	newWizard    WizardFactory
	newViewer    ViewerFactory
	subscription *authProcessor.Subscription
	logger       *observability.Logger
}

func NewRegistry(events AuthEvents, newWizard WizardFactory, newViewer ViewerFactory, logger *observability.Logger) *Registry {
	r := &Registry{
		workspaces: make(map[string]*workspace),
		newWizard:  newWizard,
		newViewer:  newViewer,
		logger:     logger,
	}
	r.subscription = events.OnAuthStateChange(r.handleAuthEvent)
	return r
}

// Wizard returns the session's wizard, creating it on first use.
func (r *Registry) Wizard(ctx context.Context, sessionID string) *wizard.Wizard {
	ws := r.workspace(sessionID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.wizard == nil {
		ws.wizard = r.newWizard(ctx)
		r.logger.Info(ctx, "created wizard for session")
	}
	return ws.wizard
}

// Viewer returns the session's progress viewer, creating it on first use.
func (r *Registry) Viewer(ctx context.Context, sessionID string) *progress.Viewer {
	ws := r.workspace(sessionID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.viewer == nil {
		ws.viewer = r.newViewer()
		r.logger.Info(ctx, "created progress viewer for session")
	}
	return ws.viewer
}

// Release discards the session's workspace. It reports whether one existed.
func (r *Registry) Release(ctx context.Context, sessionID string) bool {
	r.mu.Lock()
	ws, ok := r.workspaces[sessionID]
	delete(r.workspaces, sessionID)
	r.mu.Unlock()

	if !ok {
		return false
	}
	ws.close()

	ctx = observability.WithFields(ctx, observability.Field{Key: "session_id", Value: sessionID})
	r.logger.Info(ctx, "released session workspace")
	return true
}

// Len returns the number of live workspaces
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Close stops listening for auth events and releases every workspace.
func (r *Registry) Close() {
	r.subscription.Unsubscribe()

	r.mu.Lock()
	workspaces := r.workspaces
	r.workspaces = make(map[string]*workspace)
	r.mu.Unlock()

	for _, ws := range workspaces {
		ws.close()
	}
}

func (r *Registry) workspace(sessionID string) *workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[sessionID]
	if !ok {
		ws = &workspace{}
		r.workspaces[sessionID] = ws
	}
	return ws
}

func (r *Registry) handleAuthEvent(event authProcessor.AuthEvent) {
	if event.Type != authProcessor.EventSignedOut {
		return
	}
	r.Release(context.Background(), event.SessionID)
}

func (ws *workspace) close() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.wizard != nil {
		ws.wizard.Close()
	}
	if ws.viewer != nil {
		ws.viewer.Close()
	}
}
