// Package services provides business logic services
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectPrefix is the NATS subject tree carrying marketplace events.
const SubjectPrefix = "aidconnect.events"

// Event is the envelope broadcast to dashboard clients. Type is one of
// request.created, request.status, donation.created.
type Event struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"t"` // Unix timestamp in milliseconds
}

// EventHub fans marketplace events out to WebSocket clients. Events travel
// through NATS so any process connected to the embedded server can publish.
type EventHub struct {
	natsConn *nats.Conn
	natsSub  *nats.Subscription

	clients   map[*EventClient]bool
	clientsMu sync.RWMutex

	register   chan *EventClient
	unregister chan *EventClient
	broadcast  chan []byte

	published uint64
	dropped   uint64
	countMu   sync.Mutex
}

// NewEventHub creates a hub listening on the event subject tree.
func NewEventHub(natsConn *nats.Conn) (*EventHub, error) {
	h := &EventHub{
		natsConn:   natsConn,
		clients:    make(map[*EventClient]bool),
		register:   make(chan *EventClient),
		unregister: make(chan *EventClient),
		broadcast:  make(chan []byte, 64),
	}

	sub, err := natsConn.Subscribe(SubjectPrefix+".>", func(msg *nats.Msg) {
		select {
		case h.broadcast <- msg.Data:
		default:
			// Broadcast queue full; drop rather than block the NATS callback.
			h.countMu.Lock()
			h.dropped++
			h.countMu.Unlock()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s.>: %w", SubjectPrefix, err)
	}
	h.natsSub = sub

	return h, nil
}

// Run processes client registration and broadcasts. Call in a goroutine.
func (h *EventHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
			log.Printf("📺 Event client connected: %s (%d total)", client.remoteAddr, h.ClientCount())

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			log.Printf("📺 Event client disconnected: %s (%d total)", client.remoteAddr, h.ClientCount())

		case message := <-h.broadcast:
			h.clientsMu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; skip this message for it.
					h.countMu.Lock()
					h.dropped++
					h.countMu.Unlock()
				}
			}
			h.clientsMu.RUnlock()
		}
	}
}

// Publish marshals an event and publishes it to NATS.
func (h *EventHub) Publish(eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := h.natsConn.Publish(SubjectPrefix+"."+eventType, body); err != nil {
		return err
	}
	h.countMu.Lock()
	h.published++
	h.countMu.Unlock()
	return nil
}

// Register adds a client to the hub
func (h *EventHub) Register(client *EventClient) {
	h.register <- client
}

// ClientCount returns the number of connected WebSocket clients.
func (h *EventHub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Stats holds hub statistics
type Stats struct {
	Clients   int    `json:"clients"`
	Published uint64 `json:"published"`
	Dropped   uint64 `json:"dropped"`
}

// Stats returns current hub statistics
func (h *EventHub) Stats() Stats {
	clients := h.ClientCount()
	h.countMu.Lock()
	defer h.countMu.Unlock()
	return Stats{
		Clients:   clients,
		Published: h.published,
		Dropped:   h.dropped,
	}
}

// Shutdown unsubscribes from NATS.
func (h *EventHub) Shutdown() {
	if h.natsSub != nil {
		h.natsSub.Unsubscribe()
	}
}
