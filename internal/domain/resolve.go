package domain

import "fmt"

// Outcome describes what a resolved draw did to the acting participant.
type Outcome struct {
	Eliminated       bool
	Flipped          bool
	SecondChanceUsed bool
	Message          string
}

// ResolveDraw applies a drawn card to a participant's hand and the room's
// eliminated/stopped sets. It never advances the turn; the scheduler runs
// afterwards under the orchestrator's control.
//
// Number cards duplicating a held value eliminate the participant unless a
// second-chance card is consumed; new values are appended and reaching seven
// distinct values forces a stop with the flip bonus. Bonus cards and
// second-chance cards are appended and held. Remaining action kinds have no
// effect yet and are appended inertly.
func ResolveDraw(r *Room, p *Participant, card Card) Outcome {
	hand := r.Hands[p.ID]

	if card.Kind == KindNumber && HasNumber(hand, card.Value) {
		if HasSecondChance(hand) {
			r.Hands[p.ID] = consumeSecondChance(r, hand)
			r.Deck.Discard(card)
			return Outcome{
				SecondChanceUsed: true,
				Message:          fmt.Sprintf("%s uses a second chance!", p.Name),
			}
		}
		// Hand stays frozen as-is; the drawn duplicate is retired immediately.
		r.Eliminated[p.ID] = true
		r.Deck.Discard(card)
		return Outcome{
			Eliminated: true,
			Message:    fmt.Sprintf("%s is out! (duplicate %d)", p.Name, card.Value),
		}
	}

	r.Hands[p.ID] = append(hand, card)

	switch card.Kind {
	case KindNumber:
		if DistinctNumbers(r.Hands[p.ID]) == FlipCount {
			r.Stopped[p.ID] = true
			return Outcome{
				Flipped: true,
				Message: fmt.Sprintf("%s has FLIP 7! +%d bonus points!", p.Name, FlipBonus),
			}
		}
		return Outcome{Message: fmt.Sprintf("%s draws a %d", p.Name, card.Value)}
	case KindBonus:
		return Outcome{Message: fmt.Sprintf("%s gets a bonus: %s", p.Name, card.Bonus)}
	default:
		if card.Action == ActionSecondChance {
			return Outcome{Message: fmt.Sprintf("%s gets a second chance!", p.Name)}
		}
		return Outcome{Message: fmt.Sprintf("%s draws %s", p.Name, card.Label())}
	}
}

// consumeSecondChance removes exactly one second-chance card from the hand
// and retires it to the discard pile.
func consumeSecondChance(r *Room, hand []Card) []Card {
	out := make([]Card, 0, len(hand))
	used := false
	for _, c := range hand {
		if !used && c.Kind == KindAction && c.Action == ActionSecondChance {
			used = true
			r.Deck.Discard(c)
			continue
		}
		out = append(out, c)
	}
	return out
}
