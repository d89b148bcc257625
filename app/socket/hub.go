package socket

import (
	"sync"

	"stockguard/global"
)

// Event is one realtime notification pushed to dashboard clients.
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub fans events out to every connected dashboard client. Delivery is at
// most once: there is no persistence or replay, and a client whose send
// buffer is full is dropped rather than allowed to stall the broadcast.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client set. Call it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			global.Logger.Info().Int("clients", n).Msg("socket client connected")
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			global.Logger.Info().Int("clients", n).Msg("socket client disconnected")
		case ev := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// Slow client; it will notice the closed connection
					// and re-fetch state on reconnect.
					go func(c *Client) { h.unregister <- c }(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish implements services.Notifier. It never blocks the caller: if the
// broadcast buffer is full the event is dropped.
func (h *Hub) Publish(event string, payload interface{}) {
	select {
	case h.broadcast <- Event{Event: event, Payload: payload}:
	default:
		global.Logger.Warn().Str("event", event).Msg("broadcast buffer full, event dropped")
	}
}

// ClientCount reports connected clients, used by tests and the health probe.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
