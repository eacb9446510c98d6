package processor

import (
	"campaign-intake/internal/observability"
	"context"
	"errors"
	"sync"
	"time"
)

// ErrAuthExpired covers every failed session check: missing, invalid,
// expired or revoked tokens are treated alike.
var ErrAuthExpired = errors.New("auth session expired")

var ErrMissingSessionID = errors.New("token has no session id")

// EventType names an auth state change
type EventType string

const (
	EventSignedIn  EventType = "SIGNED_IN"
	EventSignedOut EventType = "SIGNED_OUT"
)

// AuthEvent is delivered to OnAuthStateChange listeners
type AuthEvent struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
}

// Session is an authenticated browser session
type Session struct {
	ID        string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionProvider is the identity collaborator consumed by the auth gate
// and the workspace registry.
type SessionProvider interface {
	GetSession(ctx context.Context, token string) (Session, error)
	SignOut(ctx context.Context, sessionID string) error
	OnAuthStateChange(fn func(AuthEvent)) *Subscription
}

// Subscription is the cancellation handle returned by OnAuthStateChange
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe stops event delivery. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

type AuthProcessor struct {
	jwtSecret []byte
	now       func() time.Time
	logger    *observability.Logger

	mu           sync.RWMutex
	revoked      map[string]time.Time
	listeners    map[uint64]func(AuthEvent)
	nextListener uint64
}

var _ SessionProvider = (*AuthProcessor)(nil)

func New(jwtSecret string, logger *observability.Logger) *AuthProcessor {
	return &AuthProcessor{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
		logger:    logger,
		revoked:   make(map[string]time.Time),
		listeners: make(map[uint64]func(AuthEvent)),
	}
}

// GetSession validates an access token and returns its session.
func (p *AuthProcessor) GetSession(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrAuthExpired
	}

	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return Session{}, ErrAuthExpired
	}

	session := claims.session()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: session.ID},
		observability.Field{Key: "user_id", Value: session.UserID},
	)

	if session.ID == "" {
		p.logger.Warn(ctx, ErrMissingSessionID.Error())
		return Session{}, ErrAuthExpired
	}

	p.mu.RLock()
	_, revoked := p.revoked[session.ID]
	p.mu.RUnlock()
	if revoked {
		p.logger.Info(ctx, "rejected revoked session")
		return Session{}, ErrAuthExpired
	}

	return session, nil
}

// SignIn validates a token handed over by the identity provider and
// announces the session to listeners.
func (p *AuthProcessor) SignIn(ctx context.Context, token string) (Session, error) {
	session, err := p.GetSession(ctx, token)
	if err != nil {
		return Session{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "session_id", Value: session.ID})
	p.logger.Info(ctx, "session signed in")
	p.publish(AuthEvent{Type: EventSignedIn, SessionID: session.ID, UserID: session.UserID})
	return session, nil
}

// SignOut revokes the session and notifies listeners.
func (p *AuthProcessor) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSessionID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "session_id", Value: sessionID})

	now := p.now()
	p.mu.Lock()
	for id, expiresAt := range p.revoked {
		if now.After(expiresAt) {
			delete(p.revoked, id)
		}
	}
	// Tokens are at most this old when revoked; after that they expire on their own.
	p.revoked[sessionID] = now.Add(maxSessionLifetime)
	p.mu.Unlock()

	p.logger.Info(ctx, "session signed out")
	p.publish(AuthEvent{Type: EventSignedOut, SessionID: sessionID})
	return nil
}

// OnAuthStateChange registers fn for every subsequent auth event.
func (p *AuthProcessor) OnAuthStateChange(fn func(AuthEvent)) *Subscription {
	p.mu.Lock()
	id := p.nextListener
	p.nextListener++
	p.listeners[id] = fn
	p.mu.Unlock()

	return &Subscription{cancel: func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}}
}

func (p *AuthProcessor) publish(event AuthEvent) {
	p.mu.RLock()
	listeners := make([]func(AuthEvent), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}
