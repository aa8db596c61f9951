package bot

import "flipseven/internal/domain"

// Policy decides whether an automated participant stops or keeps drawing.
// It is consulted only when it becomes the bot's turn, and may be swapped
// out without touching the orchestrator.
type Policy interface {
	ShouldStop(hand []domain.Card) bool
}

// Standard is the default drawing heuristic: bank the round once the hand is
// worth more than 35 points, holds six or more number cards, or is already
// past 25 points with four or more number cards.
type Standard struct{}

func (Standard) ShouldStop(hand []domain.Card) bool {
	score := domain.Score(hand)
	numbers := domain.NumberCount(hand)
	return score > 35 || numbers >= 6 || (score > 25 && numbers >= 4)
}
