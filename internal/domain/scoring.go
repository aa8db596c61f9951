package domain

// DistinctNumbers counts the distinct number values held in a hand.
func DistinctNumbers(hand []Card) int {
	seen := make(map[int]bool)
	for _, c := range hand {
		if c.Kind == KindNumber {
			seen[c.Value] = true
		}
	}
	return len(seen)
}

// NumberCount counts the number cards held in a hand.
func NumberCount(hand []Card) int {
	n := 0
	for _, c := range hand {
		if c.Kind == KindNumber {
			n++
		}
	}
	return n
}

// HasNumber reports whether a hand already holds a number card of the given value.
func HasNumber(hand []Card, value int) bool {
	for _, c := range hand {
		if c.Kind == KindNumber && c.Value == value {
			return true
		}
	}
	return false
}

// HasSecondChance reports whether a hand holds an unused second-chance card.
func HasSecondChance(hand []Card) bool {
	for _, c := range hand {
		if c.Kind == KindAction && c.Action == ActionSecondChance {
			return true
		}
	}
	return false
}

// Score computes a hand's value: the sum of number cards, doubled if an x2
// bonus is held (the doubling applies to the number sum only), plus 5 per +5
// bonus, plus the flip bonus when exactly seven distinct number values are
// held. Pure and independent of card order; used both for live previews and
// for committing round scores.
func Score(hand []Card) int {
	sum := 0
	bonus := 0
	double := false
	for _, c := range hand {
		switch c.Kind {
		case KindNumber:
			sum += c.Value
		case KindBonus:
			if c.Bonus == BonusDouble {
				double = true
			} else if c.Bonus == BonusPlusFive {
				bonus += 5
			}
		}
	}
	if double {
		sum *= 2
	}
	sum += bonus
	if DistinctNumbers(hand) == FlipCount {
		sum += FlipBonus
	}
	return sum
}
