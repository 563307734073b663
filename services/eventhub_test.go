package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aidconnect/backend/natsserver"
)

func newTestHub(t *testing.T) *EventHub {
	t.Helper()

	ns, err := natsserver.New(natsserver.Config{Port: -1})
	if err != nil {
		t.Fatalf("start embedded NATS: %v", err)
	}
	t.Cleanup(ns.Shutdown)

	hub, err := NewEventHub(ns.Conn())
	if err != nil {
		t.Fatalf("NewEventHub error: %v", err)
	}
	t.Cleanup(hub.Shutdown)
	go hub.Run()

	return hub
}

func TestEventHub_PublishReachesClient(t *testing.T) {
	hub := newTestHub(t)

	client := NewEventClient(hub, nil, "test-client")
	hub.Register(client)

	// Registration goes through the run loop; give it a moment.
	deadline := time.After(2 * time.Second)
	for hub.ClientCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("client was never registered")
		case <-time.After(10 * time.Millisecond):
		}
	}

	payload := map[string]string{"title": "Flood relief"}
	if err := hub.Publish("request.created", payload); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	select {
	case raw := <-client.send:
		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.Type != "request.created" {
			t.Fatalf("event type mismatch: got %q", event.Type)
		}
		var data map[string]string
		if err := json.Unmarshal(event.Data, &data); err != nil {
			t.Fatalf("unmarshal event data: %v", err)
		}
		if data["title"] != "Flood relief" {
			t.Fatalf("event data mismatch: %v", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered to client")
	}
}

func TestEventHub_Stats(t *testing.T) {
	hub := newTestHub(t)

	if err := hub.Publish("donation.created", map[string]int{"amount": 500}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	stats := hub.Stats()
	if stats.Published != 1 {
		t.Fatalf("published count mismatch: got %d want 1", stats.Published)
	}
	if stats.Clients != 0 {
		t.Fatalf("client count mismatch: got %d want 0", stats.Clients)
	}
}
