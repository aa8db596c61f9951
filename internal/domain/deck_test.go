package domain

import (
	"math/rand"
	"testing"
)

func TestCompositionCounts(t *testing.T) {
	cards := Composition()
	if len(cards) != 94 {
		t.Fatalf("composition size = %d, want 94", len(cards))
	}

	numbers := make(map[int]int)
	bonuses := make(map[BonusKind]int)
	actions := make(map[ActionKind]int)
	for _, c := range cards {
		switch c.Kind {
		case KindNumber:
			numbers[c.Value]++
		case KindBonus:
			bonuses[c.Bonus]++
		case KindAction:
			actions[c.Action]++
		}
	}

	if numbers[0] != 1 {
		t.Errorf("zero cards = %d, want 1", numbers[0])
	}
	for v := 1; v <= 12; v++ {
		if numbers[v] != v {
			t.Errorf("value %d count = %d, want %d", v, numbers[v], v)
		}
	}
	for _, k := range []BonusKind{BonusDouble, BonusPlusFive} {
		if bonuses[k] != 3 {
			t.Errorf("bonus %s count = %d, want 3", k, bonuses[k])
		}
	}
	for _, k := range []ActionKind{ActionSecondChance, ActionFlipThree, ActionFreeze} {
		if actions[k] != 3 {
			t.Errorf("action %s count = %d, want 3", k, actions[k])
		}
	}

	ids := make(map[string]bool)
	for _, c := range cards {
		if ids[c.ID] {
			t.Fatalf("duplicate card identity %s", c.ID)
		}
		ids[c.ID] = true
	}
}

// Draining the deck across several refill cycles must yield exactly the full
// composition every cycle, no card lost or duplicated.
func TestDeckRoundTripAcrossRefills(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(42)))
	total := len(Composition())

	for cycle := 0; cycle < 3; cycle++ {
		seen := make(map[string]int)
		for i := 0; i < total; i++ {
			card, err := deck.Draw()
			if err != nil {
				t.Fatalf("cycle %d draw %d: %v", cycle, i, err)
			}
			seen[card.ID]++
			deck.Discard(card)
		}
		if len(seen) != total {
			t.Fatalf("cycle %d: drew %d distinct cards, want %d", cycle, len(seen), total)
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("cycle %d: card %s drawn %d times", cycle, id, n)
			}
		}
	}
}

func TestDeckExhausted(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))
	for i := 0; i < len(Composition()); i++ {
		if _, err := deck.Draw(); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
	}
	// Nothing was discarded, so both piles are now empty.
	if _, err := deck.Draw(); err != ErrDeckExhausted {
		t.Fatalf("err = %v, want ErrDeckExhausted", err)
	}
}

func TestDrawRefillsFromDiscard(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(7)))
	held := make([]Card, 0, 4)
	for i := 0; i < 4; i++ {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		held = append(held, card)
	}
	for deck.Remaining() > 0 {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("drain: %v", err)
		}
		deck.Discard(card)
	}

	card, err := deck.Draw()
	if err != nil {
		t.Fatalf("draw after refill: %v", err)
	}
	for _, h := range held {
		if h.ID == card.ID {
			t.Fatalf("refill produced card %s still held in a hand", card.ID)
		}
	}
	if deck.DiscardCount() != 0 {
		t.Fatalf("discard pile = %d after refill, want 0", deck.DiscardCount())
	}
}
