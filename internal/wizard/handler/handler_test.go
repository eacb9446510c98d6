package handler

import (
	"bytes"
	"campaign-intake/internal/apierrors"
	"campaign-intake/internal/campaign/processor"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/store"
	"campaign-intake/internal/wizard"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

type fakeAdapter struct {
	mu      sync.Mutex
	created []processor.CampaignDraft
}

func (f *fakeAdapter) ListClients(ctx context.Context) ([]store.Client, error) {
	return []store.Client{{ID: "client-42", Name: "Acme Corp"}}, nil
}

func (f *fakeAdapter) GetClient(ctx context.Context, clientID string) (store.Client, error) {
	if clientID == "client-42" {
		return store.Client{ID: "client-42", Name: "Acme Corp"}, nil
	}
	return store.Client{}, processor.ErrClientNotFound
}

func (f *fakeAdapter) CreateCampaignTask(ctx context.Context, draft processor.CampaignDraft, clientID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, draft)
	return "task-123", nil
}

func (f *fakeAdapter) LinkCampaignTask(ctx context.Context, clientID, taskID string) error {
	return nil
}

type singleWizard struct {
	w *wizard.Wizard
}

func (s *singleWizard) Wizard(ctx context.Context, sessionID string) *wizard.Wizard {
	return s.w
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeAdapter) {
	t.Helper()
	logger := observability.NewLogger()
	adapter := &fakeAdapter{}
	w := wizard.New(context.Background(), adapter, nil, wizard.Config{MaxImageBytes: 1 << 12}, logger)
	h := New(&singleWizard{w: w}, 1<<12, logger)

	r := gin.New()
	g := r.Group("/wizard", func(c *gin.Context) {
		c.Set("Session-ID", "sess-1")
	})
	g.GET("", h.HandleGetWizard)
	g.DELETE("", h.HandleDiscardWizard)
	g.POST("/product-details", h.HandleSubmitProductDetails)
	g.POST("/campaign-objectives", h.HandleSubmitCampaignObjectives)
	g.POST("/images", h.HandleUploadImage)
	g.PUT("/images/:image_id/description", h.HandleSetImageDescription)
	g.DELETE("/images/:image_id", h.HandleRemoveImage)
	g.GET("/images/:image_id/preview", h.HandleGetImagePreview)
	g.POST("/images/submit", h.HandleSubmitImages)
	g.POST("/back", h.HandleBack)
	g.PUT("/client", h.HandleSelectClient)
	g.POST("/submit", h.HandleSubmit)
	return r, adapter
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func upload(t *testing.T, r http.Handler, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/wizard/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) wizard.View {
	t.Helper()
	var view wizard.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestHandler_FullFlow(t *testing.T) {
	r, adapter := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/wizard/product-details", gin.H{"category": "electronics"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wizard.StepCampaignObjectives, decodeState(t, w).Step)

	w = doJSON(t, r, http.MethodPost, "/wizard/campaign-objectives", gin.H{
		"objective":       "sales",
		"target_audience": "Adults 25-40 interested in tech",
		"budget":          "5000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = upload(t, r, "headphones.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code)
	var image wizard.ImageView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &image))
	assert.Equal(t, "image/png", image.ContentType)

	w = doJSON(t, r, http.MethodGet, "/wizard/images/"+image.ID+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, w.Body.Bytes())

	w = doJSON(t, r, http.MethodPost, "/wizard/images/submit", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errResp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, apierrors.CodeValidationFailed, errResp.Code)
	assert.Contains(t, errResp.Details, "descriptions."+image.ID)

	w = doJSON(t, r, http.MethodPut, "/wizard/images/"+image.ID+"/description", gin.H{
		"description": "Wireless headphones, black, noise-cancelling",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/wizard/images/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wizard.StepReview, decodeState(t, w).Step)

	w = doJSON(t, r, http.MethodPost, "/wizard/submit", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, apierrors.CodeClientRequired, errResp.Code)
	assert.Empty(t, adapter.created)

	w = doJSON(t, r, http.MethodPut, "/wizard/client", gin.H{"client_id": "client-42"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/wizard/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var result wizard.SubmitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "task-123", result.TaskID)
	assert.Equal(t, "/progress", result.Redirect)
	require.Len(t, adapter.created, 1)
	assert.Equal(t, "electronics", adapter.created[0].Category)
}

func TestHandler_ValidationDetails(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/wizard/product-details", gin.H{"category": "toys"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, apierrors.CodeValidationFailed, errResp.Code)
	assert.Equal(t, "Please select a product category", errResp.Details["category"])
}

func TestHandler_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "back on first step", method: http.MethodPost, path: "/wizard/back", want: http.StatusConflict},
		{name: "images before objectives", method: http.MethodPost, path: "/wizard/images/submit", want: http.StatusConflict},
		{name: "submit before review", method: http.MethodPost, path: "/wizard/submit", want: http.StatusConflict},
		{name: "unknown preview", method: http.MethodGet, path: "/wizard/images/nope/preview", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(t)
			w := doJSON(t, r, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_UploadRejections(t *testing.T) {
	r, _ := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/wizard/product-details", gin.H{"category": "fashion"})
	doJSON(t, r, http.MethodPost, "/wizard/campaign-objectives", gin.H{
		"objective": "awareness", "target_audience": "Teenagers who like sneakers", "budget": "100",
	})

	w := upload(t, r, "anim.gif", append([]byte("GIF89a"), make([]byte, 16)...))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(t, r, "huge.png", append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 1<<13)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/wizard/images", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MissingSession(t *testing.T) {
	logger := observability.NewLogger()
	h := New(&singleWizard{}, 0, logger)
	r := gin.New()
	r.GET("/wizard", h.HandleGetWizard)

	w := doJSON(t, r, http.MethodGet, "/wizard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
