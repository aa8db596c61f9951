package domain

import (
	"math/rand"
	"testing"
)

func testRoom(t *testing.T, hands map[string][]Card) *Room {
	t.Helper()
	var host *Participant
	r := &Room{
		Code:       "TEST01",
		Phase:      PhasePlaying,
		Hands:      make(map[string][]Card),
		Scores:     make(map[string]int),
		Eliminated: make(map[string]bool),
		Stopped:    make(map[string]bool),
		Deck:       NewDeck(rand.New(rand.NewSource(3))),
		Round:      1,
	}
	for id, hand := range hands {
		p := &Participant{ID: id, Name: id}
		if host == nil {
			host = p
		}
		r.Participants = append(r.Participants, p)
		r.Hands[id] = hand
	}
	if host != nil {
		r.HostID = host.ID
	}
	return r
}

func TestResolveDrawDuplicateEliminates(t *testing.T) {
	r := testRoom(t, map[string][]Card{"p1": {NumberCard(4, 0)}})
	p := r.ParticipantByID("p1")

	out := ResolveDraw(r, p, NumberCard(4, 1))
	if !out.Eliminated {
		t.Fatalf("expected elimination")
	}
	if !r.Eliminated["p1"] {
		t.Fatalf("eliminated set does not contain p1")
	}
	// The hand must stay frozen exactly as it was.
	if len(r.Hands["p1"]) != 1 || r.Hands["p1"][0].Value != 4 {
		t.Fatalf("hand changed on elimination: %v", r.Hands["p1"])
	}
}

func TestResolveDrawSecondChanceConsumed(t *testing.T) {
	r := testRoom(t, map[string][]Card{"p1": {NumberCard(4, 0), ActionCard(ActionSecondChance, 0)}})
	p := r.ParticipantByID("p1")
	before := r.Deck.DiscardCount()

	out := ResolveDraw(r, p, NumberCard(4, 1))
	if out.Eliminated {
		t.Fatalf("second chance should prevent elimination")
	}
	if !out.SecondChanceUsed {
		t.Fatalf("expected second chance consumption")
	}
	if len(r.Hands["p1"]) != 1 || r.Hands["p1"][0].Value != 4 {
		t.Fatalf("hand = %v, want just the original 4", r.Hands["p1"])
	}
	// Both the consumed protection and the duplicate draw are retired.
	if got := r.Deck.DiscardCount() - before; got != 2 {
		t.Fatalf("discarded %d cards, want 2", got)
	}
}

func TestResolveDrawConsumesExactlyOneSecondChance(t *testing.T) {
	r := testRoom(t, map[string][]Card{"p1": {
		NumberCard(4, 0),
		ActionCard(ActionSecondChance, 0),
		ActionCard(ActionSecondChance, 1),
	}})
	p := r.ParticipantByID("p1")

	ResolveDraw(r, p, NumberCard(4, 1))
	if !HasSecondChance(r.Hands["p1"]) {
		t.Fatalf("both second chances consumed, want one kept")
	}
}

func TestResolveDrawFlipSeven(t *testing.T) {
	r := testRoom(t, map[string][]Card{"p1": {
		NumberCard(1, 0), NumberCard(2, 0), NumberCard(3, 0),
		NumberCard(4, 0), NumberCard(5, 0), NumberCard(6, 0),
	}})
	p := r.ParticipantByID("p1")

	out := ResolveDraw(r, p, NumberCard(7, 0))
	if !out.Flipped {
		t.Fatalf("expected flip outcome")
	}
	if !r.Stopped["p1"] {
		t.Fatalf("flip must mark the participant stopped")
	}
	if r.Eliminated["p1"] {
		t.Fatalf("flip is a stop, not an elimination")
	}
	if got := Score(r.Hands["p1"]); got != 43 {
		t.Fatalf("flip hand score = %d, want 43", got)
	}
}

func TestResolveDrawAppends(t *testing.T) {
	tests := []struct {
		name string
		card Card
	}{
		{name: "new number", card: NumberCard(9, 0)},
		{name: "bonus", card: BonusCard(BonusDouble, 0)},
		{name: "second chance held", card: ActionCard(ActionSecondChance, 0)},
		{name: "flip-three is inert", card: ActionCard(ActionFlipThree, 0)},
		{name: "freeze is inert", card: ActionCard(ActionFreeze, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRoom(t, map[string][]Card{"p1": {NumberCard(4, 0)}})
			p := r.ParticipantByID("p1")

			out := ResolveDraw(r, p, tt.card)
			if out.Eliminated || out.Flipped {
				t.Fatalf("unexpected outcome %+v", out)
			}
			if len(r.Hands["p1"]) != 2 {
				t.Fatalf("hand size = %d, want 2", len(r.Hands["p1"]))
			}
			if r.Hands["p1"][1].ID != tt.card.ID {
				t.Fatalf("appended card = %v, want %v", r.Hands["p1"][1], tt.card)
			}
		})
	}
}
