package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ai_content_generator/pages"
)

const (
	pageOutline    = "outline"
	pageArticle    = "article"
	pageTranslator = "translator"
)

const defaultMaxActivations = 1024

// activation is one mounted page; exactly one of the view fields is set.
type activation struct {
	id        string
	page      string
	createdAt time.Time

	outline    *pages.OutlineView
	article    *pages.ArticleView
	translator *pages.TranslatorView
}

type activationStore struct {
	mu    sync.Mutex
	max   int
	items map[string]*activation
}

func newStore(max int) *activationStore {
	if max <= 0 {
		max = defaultMaxActivations
	}
	return &activationStore{max: max, items: make(map[string]*activation)}
}

// set drops the oldest activation once the store is full.
func (s *activationStore) set(a *activation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) >= s.max {
		var oldest *activation
		for _, it := range s.items {
			if oldest == nil || it.createdAt.Before(oldest.createdAt) {
				oldest = it
			}
		}
		delete(s.items, oldest.id)
	}
	s.items[a.id] = a
}

func (s *activationStore) get(id string) (*activation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	return a, ok
}

func (s *activationStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func newActivationID() string {
	return uuid.NewString()
}
