package domain

import "fmt"

// CardKind discriminates the three card families in the deck.
type CardKind string

const (
	KindNumber CardKind = "number"
	KindBonus  CardKind = "bonus"
	KindAction CardKind = "action"
)

// BonusKind identifies a bonus card's effect on scoring.
type BonusKind string

const (
	BonusDouble   BonusKind = "x2"
	BonusPlusFive BonusKind = "+5"
)

// ActionKind identifies an action card. Only second-chance has an effect
// today; flip-three and freeze are held inertly until an effect is defined.
type ActionKind string

const (
	ActionSecondChance ActionKind = "second-chance"
	ActionFlipThree    ActionKind = "flip-three"
	ActionFreeze       ActionKind = "freeze"
)

// Card is a single card in the Flip Seven deck. ID distinguishes otherwise
// equal cards: elimination is triggered by duplicate values, not duplicate
// identities, and the deck accounting needs every physical card to be unique.
// Construct cards through NumberCard, BonusCard or ActionCard so the payload
// always matches the kind.
type Card struct {
	ID     string     `json:"id"`
	Kind   CardKind   `json:"kind"`
	Value  int        `json:"value,omitempty"`
	Bonus  BonusKind  `json:"bonus,omitempty"`
	Action ActionKind `json:"action,omitempty"`
}

// NumberCard builds a number card worth value points. nth distinguishes
// the multiple physical copies of the same value.
func NumberCard(value, nth int) Card {
	return Card{
		ID:    fmt.Sprintf("%d-%d", value, nth),
		Kind:  KindNumber,
		Value: value,
	}
}

// BonusCard builds a bonus card of the given kind.
func BonusCard(kind BonusKind, nth int) Card {
	return Card{
		ID:    fmt.Sprintf("%s-%d", kind, nth),
		Kind:  KindBonus,
		Bonus: kind,
	}
}

// ActionCard builds an action card of the given kind.
func ActionCard(kind ActionKind, nth int) Card {
	return Card{
		ID:     fmt.Sprintf("%s-%d", kind, nth),
		Kind:   KindAction,
		Action: kind,
	}
}

// Label returns a short human-readable name for outcome messages.
func (c Card) Label() string {
	switch c.Kind {
	case KindNumber:
		return fmt.Sprintf("%d", c.Value)
	case KindBonus:
		return string(c.Bonus)
	default:
		return string(c.Action)
	}
}
