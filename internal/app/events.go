package app

import "flipseven/internal/domain"

// EventKind identifies outbound notifications broadcast to a room.
type EventKind string

const (
	EventRoomCreated     EventKind = "room_created"
	EventRoomJoined      EventKind = "room_joined"
	EventRoomUpdated     EventKind = "room_updated"
	EventGameStarted     EventKind = "game_started"
	EventHandsDealt      EventKind = "hands_dealt"
	EventCardRevealed    EventKind = "card_revealed"
	EventCardResolved    EventKind = "card_resolved"
	EventTurnPassed      EventKind = "turn_passed"
	EventTurnAdvanced    EventKind = "turn_advanced"
	EventRoundEnded      EventKind = "round_ended"
	EventNewRoundStarted EventKind = "new_round_started"
	EventError           EventKind = "error"
)

// Event is one outbound notification with its typed payload.
type Event struct {
	Kind    EventKind `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// Notifier delivers events to every connected participant of a room. The
// delivery adapter implements it; error outcomes are not broadcast and travel
// back to the requester on the trigger's return path instead.
type Notifier interface {
	Broadcast(roomCode string, ev Event)
}

// RoomWelcomePayload acknowledges a create or join to the requester, carrying
// their own stable participant ID alongside the room snapshot.
type RoomWelcomePayload struct {
	RoomCode      string       `json:"roomCode"`
	ParticipantID string       `json:"participantId"`
	Room          RoomSnapshot `json:"room"`
}

type RoomUpdatedPayload struct {
	Room RoomSnapshot `json:"room"`
}

type GameStartedPayload struct {
	Room RoomSnapshot `json:"room"`
}

type HandsDealtPayload struct {
	Hands     map[string][]domain.Card `json:"hands"`
	DeckCount int                      `json:"deckCount"`
}

// CardRevealedPayload announces the drawn card before its effect is applied,
// so clients can pace the reveal.
type CardRevealedPayload struct {
	ParticipantID string      `json:"participantId"`
	Card          domain.Card `json:"card"`
}

type CardResolvedPayload struct {
	Hands      map[string][]domain.Card `json:"hands"`
	Eliminated []string                 `json:"eliminated"`
	Stopped    []string                 `json:"stopped"`
	Message    string                   `json:"message"`
}

type TurnPassedPayload struct {
	ParticipantID string   `json:"participantId"`
	Name          string   `json:"name"`
	Stopped       []string `json:"stopped"`
}

type TurnAdvancedPayload struct {
	TurnIndex     int    `json:"turnIndex"`
	ParticipantID string `json:"participantId"`
}

type RoundEndedPayload struct {
	Scores       map[string]int `json:"scores"`
	Eliminated   []string       `json:"eliminated"`
	Winner       string         `json:"winner,omitempty"`
	WinningScore int            `json:"winningScore"`
	GameOver     bool           `json:"gameOver"`
}

type NewRoundStartedPayload struct {
	Round int          `json:"round"`
	Room  RoomSnapshot `json:"room"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
