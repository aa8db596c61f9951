package domain

// AdvanceTurn moves the turn pointer to the next participant still playing
// this round. It scans forward from the slot after CurrentTurn, wrapping, for
// at most one full pass. It returns the new turn index and false, or leaves
// CurrentTurn untouched and returns true when no eligible participant
// remains and the round is complete.
func AdvanceTurn(r *Room) (int, bool) {
	n := len(r.Participants)
	if n == 0 {
		return 0, true
	}
	for step := 1; step <= n; step++ {
		idx := (r.CurrentTurn + step) % n
		if r.Eligible(r.Participants[idx].ID) {
			r.CurrentTurn = idx
			return idx, false
		}
	}
	return r.CurrentTurn, true
}
