package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHub_NewHub(t *testing.T) {
	hub := NewHub(zap.NewNop())

	if hub == nil {
		t.Fatal("NewHub returned nil")
	}
	if hub.clients == nil {
		t.Error("Hub clients map not initialized")
	}
	if hub.register == nil {
		t.Error("Hub register channel not initialized")
	}
	if hub.events == nil {
		t.Error("Hub events channel not initialized")
	}
}

func TestHub_PublishDoesNotBlockWithoutSubscribers(t *testing.T) {
	hub := NewHub(zap.NewNop())

	// Without Run draining events, publishing beyond the buffer must not
	// stall the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish("analysis-1", "recognizing", "")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked the pipeline")
	}
}

func TestHub_BroadcastFiltersByAnalysisID(t *testing.T) {
	hub := NewHub(zap.NewNop())

	matching := &Client{hub: hub, send: make(chan []byte, 1), analysisID: "a-1", logger: zap.NewNop()}
	other := &Client{hub: hub, send: make(chan []byte, 1), analysisID: "a-2", logger: zap.NewNop()}
	all := &Client{hub: hub, send: make(chan []byte, 1), analysisID: "", logger: zap.NewNop()}

	hub.clients[matching] = struct{}{}
	hub.clients[other] = struct{}{}
	hub.clients[all] = struct{}{}

	hub.broadcast(ProgressMessage{
		BaseMessage: BaseMessage{Type: MessageTypeProgress, Timestamp: time.Now().Format(time.RFC3339)},
		AnalysisID:  "a-1",
		Stage:       "completed",
		Detail:      "British English",
	})

	select {
	case payload := <-matching.send:
		var msg ProgressMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("Failed to decode event: %v", err)
		}
		if msg.Stage != "completed" || msg.AnalysisID != "a-1" {
			t.Errorf("Unexpected event %+v", msg)
		}
	default:
		t.Error("Matching subscriber did not receive the event")
	}

	select {
	case <-other.send:
		t.Error("Subscriber for another analysis received the event")
	default:
	}

	select {
	case <-all.send:
	default:
		t.Error("Wildcard subscriber did not receive the event")
	}
}
