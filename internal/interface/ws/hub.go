package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/yanqian/omx-assistant/internal/domain/conversation"
	"github.com/yanqian/omx-assistant/pkg/metrics"
)

// Event is pushed to every listener of a session.
type Event struct {
	Type      string              `json:"type"`
	SessionID string              `json:"sessionId"`
	Turns     []conversation.Turn `json:"turns"`
}

// Hub fans session turns out to the websocket clients subscribed to that session.
type Hub struct {
	mu         sync.RWMutex
	sessions   map[string]map[*Client]struct{}
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]struct{}),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.With("component", "ws.hub"),
	}
}

// Run drives the hub event loop until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			listeners, ok := h.sessions[client.sessionID]
			if !ok {
				listeners = make(map[*Client]struct{})
				h.sessions[client.sessionID] = listeners
			}
			listeners[client] = struct{}{}
			h.mu.Unlock()
			metrics.WebsocketClients.Inc()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.Warn("failed to encode ws event", "error", err)
				continue
			}
			h.mu.Lock()
			for client := range h.sessions[event.SessionID] {
				select {
				case client.send <- data:
				default:
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implements conversation.TurnPublisher. Events are dropped when the hub is saturated.
func (h *Hub) Publish(sessionID string, turns []conversation.Turn) {
	event := &Event{Type: "turns", SessionID: sessionID, Turns: turns}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("ws broadcast queue full, dropping event", "session_id", sessionID)
	}
}

// ClientCount returns the number of listeners attached to a session.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

// remove must be called with h.mu held.
func (h *Hub) remove(client *Client) {
	listeners, ok := h.sessions[client.sessionID]
	if !ok {
		return
	}
	if _, ok := listeners[client]; !ok {
		return
	}
	delete(listeners, client)
	close(client.send)
	metrics.WebsocketClients.Dec()
	if len(listeners) == 0 {
		delete(h.sessions, client.sessionID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, listeners := range h.sessions {
		for client := range listeners {
			h.remove(client)
		}
	}
}

var _ conversation.TurnPublisher = (*Hub)(nil)
