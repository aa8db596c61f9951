package web

import (
	"encoding/json"
	"testing"

	"flipseven/internal/app"
)

func testClient(roomCode string) *Client {
	return &Client{
		send:          make(chan []byte, 4),
		roomCode:      roomCode,
		participantID: "p-" + roomCode,
	}
}

func TestHubBroadcastReachesRoomOnly(t *testing.T) {
	hub := NewHub(nil)
	inRoom := testClient("AAAAAA")
	other := testClient("BBBBBB")
	hub.Join(inRoom)
	hub.Join(other)

	hub.Broadcast("AAAAAA", app.Event{Kind: app.EventTurnAdvanced, Payload: app.TurnAdvancedPayload{TurnIndex: 1}})

	select {
	case data := <-inRoom.send:
		var ev app.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Kind != app.EventTurnAdvanced {
			t.Fatalf("kind = %s, want turn_advanced", ev.Kind)
		}
	default:
		t.Fatalf("room member received nothing")
	}

	select {
	case <-other.send:
		t.Fatalf("event leaked to another room")
	default:
	}
}

func TestHubRemove(t *testing.T) {
	hub := NewHub(nil)
	c := testClient("CCCCCC")
	hub.Join(c)
	hub.Remove(c)

	hub.Broadcast("CCCCCC", app.Event{Kind: app.EventRoomUpdated})
	select {
	case <-c.send:
		t.Fatalf("removed client still receives broadcasts")
	default:
	}
}

func TestHubDropsBlockedClient(t *testing.T) {
	hub := NewHub(nil)
	c := &Client{send: make(chan []byte), roomCode: "DDDDDD"}
	hub.Join(c)

	// The unbuffered channel cannot accept the send; the client is dropped
	// instead of blocking the room's trigger processing.
	hub.Broadcast("DDDDDD", app.Event{Kind: app.EventRoomUpdated})

	if _, ok := <-c.send; ok {
		t.Fatalf("send channel should be closed")
	}

	// Late sends to the dropped client are no-ops, never panics: the client
	// may still try to unicast an error reply from its own read loop.
	if c.enqueue([]byte("{}")) {
		t.Fatalf("enqueue after drop should report false")
	}
	c.sendError("not your turn")
	hub.Broadcast("DDDDDD", app.Event{Kind: app.EventRoomUpdated})
}

func TestClientCloseSendIdempotent(t *testing.T) {
	c := testClient("EEEEEE")
	c.closeSend()
	c.closeSend()
	if c.enqueue([]byte("{}")) {
		t.Fatalf("enqueue after close should report false")
	}
}
