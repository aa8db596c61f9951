package domain

// Phase represents the lifecycle stage of a game room.
type Phase string

const (
	// PhaseLobby is the pre-game state where participants can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active round state where cards are drawn.
	PhasePlaying Phase = "playing"
	// PhaseRoundEnd is the state between rounds, after scores are committed.
	PhaseRoundEnd Phase = "roundEnd"
)

// Participant is a human or automated player in a room. Immutable after
// creation; the ID is a stable logical identifier, independent of any
// transport session.
type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"isBot"`
}

// Room holds the authoritative state for one game session. Turn order is the
// order of the Participants slice. The orchestrator is the only writer.
type Room struct {
	Code         string
	HostID       string
	Participants []*Participant
	Phase        Phase

	Hands      map[string][]Card
	Scores     map[string]int
	Eliminated map[string]bool
	Stopped    map[string]bool

	CurrentTurn int
	Round       int
	Deck        *Deck
}

// NewRoom creates a room in the lobby phase with a single participant, who
// becomes the host.
func NewRoom(code string, host *Participant) *Room {
	return &Room{
		Code:         code,
		HostID:       host.ID,
		Participants: []*Participant{host},
		Phase:        PhaseLobby,
		Hands:        make(map[string][]Card),
		Scores:       make(map[string]int),
		Eliminated:   make(map[string]bool),
		Stopped:      make(map[string]bool),
	}
}

// CurrentParticipant returns the participant whose turn it is, or nil when
// the room is empty.
func (r *Room) CurrentParticipant() *Participant {
	if len(r.Participants) == 0 || r.CurrentTurn >= len(r.Participants) {
		return nil
	}
	return r.Participants[r.CurrentTurn]
}

// ParticipantByID looks a participant up by stable ID.
func (r *Room) ParticipantByID(id string) *Participant {
	for _, p := range r.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Eligible reports whether a participant may still act this round.
func (r *Room) Eligible(id string) bool {
	return !r.Eliminated[id] && !r.Stopped[id]
}

// HumanCount returns the number of non-bot participants.
func (r *Room) HumanCount() int {
	n := 0
	for _, p := range r.Participants {
		if !p.IsBot {
			n++
		}
	}
	return n
}

// RemoveParticipant takes a participant out of the turn order and drops their
// per-round and cumulative state. Their hand is retired to the discard pile
// so the deck accounting stays intact. It returns the removed participant and
// whether they were the acting participant, and keeps CurrentTurn addressing
// a valid index.
func (r *Room) RemoveParticipant(id string) (*Participant, bool) {
	idx := -1
	for i, p := range r.Participants {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false
	}
	removed := r.Participants[idx]
	wasActing := idx == r.CurrentTurn

	if r.Deck != nil && len(r.Hands[id]) > 0 {
		r.Deck.Discard(r.Hands[id]...)
	}
	delete(r.Hands, id)
	delete(r.Scores, id)
	delete(r.Eliminated, id)
	delete(r.Stopped, id)

	r.Participants = append(r.Participants[:idx], r.Participants[idx+1:]...)

	switch {
	case len(r.Participants) == 0:
		r.CurrentTurn = 0
	case idx < r.CurrentTurn:
		r.CurrentTurn--
	case idx == r.CurrentTurn:
		// Step back one slot so the scheduler's forward scan starts at the
		// participant who inherited this index.
		r.CurrentTurn = (idx - 1 + len(r.Participants)) % len(r.Participants)
	}

	if removed.ID == r.HostID && len(r.Participants) > 0 {
		r.HostID = r.Participants[0].ID
	}
	return removed, wasActing
}

// ResetRound clears all per-round state ahead of a deal. Cumulative scores
// are preserved.
func (r *Room) ResetRound() {
	r.Hands = make(map[string][]Card)
	r.Eliminated = make(map[string]bool)
	r.Stopped = make(map[string]bool)
	r.CurrentTurn = 0
}

// Winner reports the terminal condition: at round end, the first participant
// in turn order holding the maximum cumulative score wins once that score
// reaches TargetScore. Ties therefore go to the earliest seat.
func (r *Room) Winner() (*Participant, int, bool) {
	maxScore := 0
	for _, s := range r.Scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore < TargetScore {
		return nil, maxScore, false
	}
	for _, p := range r.Participants {
		if r.Scores[p.ID] == maxScore {
			return p, maxScore, true
		}
	}
	return nil, maxScore, false
}
