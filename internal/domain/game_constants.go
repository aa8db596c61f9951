package domain

const (
	// MaxPlayers caps the number of participants in one room.
	MaxPlayers = 6
	// FlipCount is the number of distinct number values that forces a stop
	// and grants the flip bonus.
	FlipCount = 7
	// FlipBonus is the flat score bonus for reaching FlipCount distinct values.
	FlipBonus = 15
	// TargetScore is the cumulative score at which the game ends.
	TargetScore = 200
)
