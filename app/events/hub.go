package events

import (
	"sync"
	"time"
)

// Event types published on article/analysis mutation. UI subscribers use
// these for live dashboard updates.
const (
	ArticleCreated  = "article.created"
	ArticleAnalyzed = "article.analyzed"
	AnalysisUpdated = "analysis.updated"
)

type Event struct {
	Type      string    `json:"type"`
	ArticleID string    `json:"article_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub is a minimal in-process fan-out. Publish never blocks: subscribers that
// fall behind lose events rather than stalling the pipeline.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(eventType, articleID string) {
	event := Event{Type: eventType, ArticleID: articleID, Timestamp: time.Now().UTC()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
