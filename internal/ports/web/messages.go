package web

// Inbound message types, one per trigger the core accepts.
const (
	msgCreateRoom = "create_room"
	msgJoinRoom   = "join_room"
	msgAddBots    = "add_bots"
	msgStartGame  = "start_game"
	msgDrawCard   = "draw_card"
	msgStopTurn   = "stop_turn"
	msgNextRound  = "next_round"
)

// inboundMessage is the wire format clients send over the socket.
type inboundMessage struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Code  string `json:"code,omitempty"`
	Count int    `json:"count,omitempty"`
}
