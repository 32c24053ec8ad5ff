package events

import (
	"testing"
	"time"
)

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	hub.Publish(ArticleCreated, "article-1")

	select {
	case event := <-ch:
		if event.Type != ArticleCreated {
			t.Errorf("Expected event type %s, got %s", ArticleCreated, event.Type)
		}
		if event.ArticleID != "article-1" {
			t.Errorf("Expected article-1, got %s", event.ArticleID)
		}
		if event.Timestamp.IsZero() {
			t.Error("Expected a timestamp on the event")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected an event, got none")
	}
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	// Nobody drains the channel; publishing past the buffer must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(ArticleAnalyzed, "article-x")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Error("Expected channel to be closed after unsubscribe")
	}

	// Double unsubscribe is a no-op, not a panic
	hub.Unsubscribe(ch)
}
