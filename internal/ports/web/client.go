package web

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"flipseven/internal/app"
)

// Client is one WebSocket session. After a successful create or join it is
// bound to a participant ID and a room; the participant ID is the stable
// game-state identity, the connection is only the delivery address.
type Client struct {
	hub    *Hub
	svc    *app.Service
	conn   *websocket.Conn
	logger *slog.Logger

	// mu guards send's closed state: the hub and the read loop both enqueue,
	// so the channel may only be closed behind the same lock.
	mu     sync.Mutex
	send   chan []byte
	closed bool

	participantID string
	roomCode      string
}

func newClient(hub *Hub, svc *app.Service, conn *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		hub:    hub,
		svc:    svc,
		conn:   conn,
		send:   make(chan []byte, 16),
		logger: logger,
	}
}

// readPump decodes inbound messages and dispatches them to the service until
// the connection drops, which counts as the participant disconnecting.
func (c *Client) readPump() {
	defer func() {
		c.hub.Remove(c)
		c.closeSend()
		c.conn.Close()
		if c.participantID != "" {
			c.svc.Disconnect(c.participantID)
		}
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("malformed message")
			continue
		}
		c.handle(msg)
	}
}

// writePump flushes queued events to the socket.
func (c *Client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (c *Client) handle(msg inboundMessage) {
	switch msg.Type {
	case msgCreateRoom:
		snap, p, err := c.svc.CreateRoom(msg.Name)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.participantID, c.roomCode = p.ID, snap.Code
		c.hub.Join(c)
		c.sendEvent(app.Event{
			Kind:    app.EventRoomCreated,
			Payload: app.RoomWelcomePayload{RoomCode: snap.Code, ParticipantID: p.ID, Room: snap},
		})

	case msgJoinRoom:
		snap, p, err := c.svc.JoinRoom(msg.Code, msg.Name)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.participantID, c.roomCode = p.ID, snap.Code
		c.hub.Join(c)
		c.sendEvent(app.Event{
			Kind:    app.EventRoomJoined,
			Payload: app.RoomWelcomePayload{RoomCode: snap.Code, ParticipantID: p.ID, Room: snap},
		})

	case msgAddBots:
		c.reply(c.svc.AddBots(c.roomCode, c.participantID, msg.Count))
	case msgStartGame:
		c.reply(c.svc.StartGame(c.roomCode, c.participantID))
	case msgDrawCard:
		c.reply(c.svc.DrawCard(c.roomCode, c.participantID))
	case msgStopTurn:
		c.reply(c.svc.StopTurn(c.roomCode, c.participantID))
	case msgNextRound:
		c.reply(c.svc.StartNextRound(c.roomCode, c.participantID))
	default:
		c.sendError("unknown message type")
	}
}

// reply surfaces a trigger's error to this requester only; successful
// triggers broadcast their own events.
func (c *Client) reply(err error) {
	if err != nil {
		c.sendError(err.Error())
	}
}

func (c *Client) sendError(message string) {
	c.sendEvent(app.Event{Kind: app.EventError, Payload: app.ErrorPayload{Message: message}})
}

func (c *Client) sendEvent(ev app.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		c.logger.Error("failed to marshal event", "kind", ev.Kind, "error", err)
		return
	}
	c.enqueue(data)
}

// enqueue hands data to the write pump without blocking. It reports false when
// the queue is full or already closed; either way the caller must not retry.
func (c *Client) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// closeSend shuts the outbound queue down exactly once, which ends writePump.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
