package web

import (
	"encoding/json"
	"log/slog"
	"sync"

	"flipseven/internal/app"
)

// Hub tracks which WebSocket clients belong to which room and delivers
// broadcast events to them. It implements app.Notifier. Game state lives in
// the app layer; the hub only knows connections.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *slog.Logger
}

// NewHub builds an empty hub. A nil logger falls back to slog.Default.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		rooms:  make(map[string]map[*Client]bool),
		logger: logger,
	}
}

// Join registers a client under its room code once create/join succeeded.
func (h *Hub) Join(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[c.roomCode]; !ok {
		h.rooms[c.roomCode] = make(map[*Client]bool)
	}
	h.rooms[c.roomCode][c] = true
	h.logger.Info("client registered", "room", c.roomCode, "participant", c.participantID)
}

// Remove drops a client from its room, if any.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[c.roomCode]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, c.roomCode)
		}
	}
}

// Broadcast delivers an event to every connection in the room. Slow clients
// are dropped rather than allowed to block the room's trigger processing:
// closing their outbound queue ends the write pump, which closes the
// connection and lets the read pump run its disconnect cleanup.
func (h *Hub) Broadcast(roomCode string, ev app.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("failed to marshal event", "kind", ev.Kind, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[roomCode] {
		if !c.enqueue(data) {
			c.closeSend()
			delete(h.rooms[roomCode], c)
		}
	}
}
