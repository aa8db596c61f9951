package bot

import "fmt"

// roster holds the display names handed out to automated participants.
var roster = []string{"Max", "Sophie", "Lukas", "Emma", "Felix", "Anna"}

// PickName returns a display name not present in taken, falling back to a
// numbered CPU name once the roster is exhausted.
func PickName(taken map[string]bool) string {
	for _, name := range roster {
		if !taken[name] {
			return name
		}
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("CPU %d", i)
		if !taken[name] {
			return name
		}
	}
}
