package domain

import (
	"errors"
	"math/rand"
)

// ErrDeckExhausted is returned when both the draw and discard piles are empty.
// It cannot occur while the room invariant holds: every card is always in the
// draw pile, the discard pile, or an active hand.
var ErrDeckExhausted = errors.New("deck exhausted: draw and discard piles are both empty")

// Deck is the shared draw pile plus the discard pile of retired cards.
type Deck struct {
	rng     *rand.Rand
	draw    []Card
	discard []Card
}

// Composition returns the full fixed card set, unshuffled: values 1..12 with
// quantity equal to the value, a single 0, three of each bonus kind and three
// of each action kind.
func Composition() []Card {
	cards := make([]Card, 0, 94)
	for v := 1; v <= 12; v++ {
		for n := 0; n < v; n++ {
			cards = append(cards, NumberCard(v, n))
		}
	}
	cards = append(cards, NumberCard(0, 0))
	for n := 0; n < 3; n++ {
		cards = append(cards, BonusCard(BonusDouble, n))
		cards = append(cards, BonusCard(BonusPlusFive, n))
	}
	for n := 0; n < 3; n++ {
		cards = append(cards, ActionCard(ActionSecondChance, n))
		cards = append(cards, ActionCard(ActionFlipThree, n))
		cards = append(cards, ActionCard(ActionFreeze, n))
	}
	return cards
}

// NewDeck builds a full deck shuffled with the given rng and an empty
// discard pile.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng, draw: Composition()}
	d.shuffle(d.draw)
	return d
}

// Draw pops the top card of the draw pile. When the draw pile is empty the
// discard pile is shuffled into it first, so cards are never lost across
// refill cycles.
func (d *Deck) Draw() (Card, error) {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			return Card{}, ErrDeckExhausted
		}
		d.draw = d.discard
		d.discard = nil
		d.shuffle(d.draw)
	}
	card := d.draw[0]
	d.draw = d.draw[1:]
	return card, nil
}

// Discard retires cards to the discard pile.
func (d *Deck) Discard(cards ...Card) {
	d.discard = append(d.discard, cards...)
}

// Remaining reports the number of cards left in the draw pile.
func (d *Deck) Remaining() int {
	return len(d.draw)
}

// DiscardCount reports the number of retired cards awaiting reshuffle.
func (d *Deck) DiscardCount() int {
	return len(d.discard)
}

func (d *Deck) shuffle(cards []Card) {
	d.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
