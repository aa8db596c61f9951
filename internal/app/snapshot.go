package app

import (
	"sort"

	"flipseven/internal/domain"
)

// RoomSnapshot is the full observable state of a room, safe to broadcast:
// the deck is exposed only as a count, never as an ordering.
type RoomSnapshot struct {
	Code         string                   `json:"code"`
	HostID       string                   `json:"hostId"`
	Participants []domain.Participant     `json:"participants"`
	Phase        domain.Phase             `json:"phase"`
	Hands        map[string][]domain.Card `json:"hands"`
	Scores       map[string]int           `json:"scores"`
	Eliminated   []string                 `json:"eliminated"`
	Stopped      []string                 `json:"stopped"`
	CurrentTurn  int                      `json:"currentTurn"`
	Round        int                      `json:"round"`
	DeckCount    int                      `json:"deckCount"`
}

// Snapshot copies a room's observable state.
func Snapshot(r *domain.Room) RoomSnapshot {
	s := RoomSnapshot{
		Code:        r.Code,
		HostID:      r.HostID,
		Phase:       r.Phase,
		Hands:       copyHands(r.Hands),
		Scores:      make(map[string]int, len(r.Scores)),
		Eliminated:  setToSlice(r.Eliminated),
		Stopped:     setToSlice(r.Stopped),
		CurrentTurn: r.CurrentTurn,
		Round:       r.Round,
	}
	for _, p := range r.Participants {
		s.Participants = append(s.Participants, *p)
	}
	for id, score := range r.Scores {
		s.Scores[id] = score
	}
	if r.Deck != nil {
		s.DeckCount = r.Deck.Remaining()
	}
	return s
}

func copyHands(hands map[string][]domain.Card) map[string][]domain.Card {
	out := make(map[string][]domain.Card, len(hands))
	for id, hand := range hands {
		out[id] = append([]domain.Card(nil), hand...)
	}
	return out
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
