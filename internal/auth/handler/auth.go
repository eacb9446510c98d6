package handler

import (
	"campaign-intake/internal/apierrors"
	"campaign-intake/internal/auth/processor"
	"campaign-intake/internal/observability"
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SessionService is the subset of the auth processor used over HTTP
type SessionService interface {
	processor.SessionProvider
	SignIn(ctx context.Context, token string) (processor.Session, error)
}

// Config controls where unauthenticated users are sent and how the session cookie is set
type Config struct {
	LoginPath    string
	CookieName   string
	SecureCookie bool
}

type Handler struct {
	sessions SessionService
	config   Config
	logger   *observability.Logger
}

type CreateSessionRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type eventMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
}

const eventSubscribed = "SUBSCRIBED"

// upgrader is a shared WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func New(sessions SessionService, config Config, logger *observability.Logger) Handler {
	if config.LoginPath == "" {
		config.LoginPath = "/login"
	}
	if config.CookieName == "" {
		config.CookieName = "session"
	}
	return Handler{sessions: sessions, config: config, logger: logger}
}

// HandleAuthGate rejects requests without a valid session before any
// protected handler runs. Browsers are redirected to the login page and
// API clients get a 401 carrying the redirect target.
func (h *Handler) HandleAuthGate(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.sessions.GetSession(ctx, h.tokenFromRequest(c))
	if err != nil {
		if wantsHTML(c.Request) {
			c.Redirect(http.StatusFound, h.config.LoginPath)
			c.Abort()
			return
		}
		apierrors.RespondWithError(c, apierrors.AuthExpired(h.config.LoginPath))
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: session.ID},
		observability.Field{Key: "user_id", Value: session.UserID},
	)
	c.Request = c.Request.WithContext(ctx)
	c.Set("Session-ID", session.ID)
	c.Set("User-ID", session.UserID)
	c.Set("User-Email", session.Email)
	c.Next()
}

// HandleLogin handles GET /login
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.sessions.GetSession(ctx, h.tokenFromRequest(c)); err == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "redirect": "/"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated":    false,
		"session_endpoint": "/api/auth/session",
	})
}

// HandleCreateSession handles POST /api/auth/session
func (h *Handler) HandleCreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	session, err := h.sessions.SignIn(ctx, req.AccessToken)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.AuthExpired(h.config.LoginPath))
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, req.AccessToken, maxAge, "/", "", h.config.SecureCookie, true)
	c.JSON(http.StatusOK, session)
}

// HandleSignOut handles POST /api/protected/auth/signout
func (h *Handler) HandleSignOut(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.sessions.SignOut(ctx, c.GetString("Session-ID")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, "", -1, "/", "", h.config.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"redirect": h.config.LoginPath})
}

// HandleEvents handles GET /api/protected/events. The socket stays subscribed
// to auth changes until the client leaves or the session signs out.
func (h *Handler) HandleEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.GetString("Session-ID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade websocket", err)
		return
	}
	defer conn.Close()

	signedOut := make(chan struct{})
	var once sync.Once
	sub := h.sessions.OnAuthStateChange(func(event processor.AuthEvent) {
		if event.Type == processor.EventSignedOut && event.SessionID == sessionID {
			once.Do(func() { close(signedOut) })
		}
	})
	defer sub.Unsubscribe()

	if err := conn.WriteJSON(eventMessage{Type: eventSubscribed, SessionID: sessionID}); err != nil {
		h.logger.Error(ctx, "failed to write websocket message", err)
		return
	}

	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-signedOut:
		h.logger.Info(ctx, "notifying websocket of sign out")
		if err := conn.WriteJSON(eventMessage{
			Type:     string(processor.EventSignedOut),
			Redirect: h.config.LoginPath,
		}); err != nil {
			h.logger.Error(ctx, "failed to write websocket message", err)
			return
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "signed out"))
	case <-clientGone:
	case <-ctx.Done():
	}
}

func (h *Handler) tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(h.config.CookieName); err == nil {
		return cookie
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
