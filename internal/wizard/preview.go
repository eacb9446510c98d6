package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// Preview is a session-local handle to an uploaded image's bytes
type Preview struct {
	Data        []byte
	ContentType string
}

// PreviewStore holds image previews for one wizard session. Every handle
// must be released when its image is removed or the draft is discarded.
type PreviewStore struct {
	mu       sync.RWMutex
	previews map[string]Preview
}

func NewPreviewStore() *PreviewStore {
	return &PreviewStore{previews: make(map[string]Preview)}
}

// Create stores the preview and returns its handle id
func (s *PreviewStore) Create(data []byte, contentType string) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.previews[id] = Preview{Data: data, ContentType: contentType}
	s.mu.Unlock()
	return id
}

func (s *PreviewStore) Get(id string) (Preview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.previews[id]
	return p, ok
}

// Release frees one handle; it reports whether the handle existed
func (s *PreviewStore) Release(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.previews[id]; !ok {
		return false
	}
	delete(s.previews, id)
	return true
}

// ReleaseAll frees every handle and returns how many were held
func (s *PreviewStore) ReleaseAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.previews)
	s.previews = make(map[string]Preview)
	return n
}

func (s *PreviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.previews)
}
