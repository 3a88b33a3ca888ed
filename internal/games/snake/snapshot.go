package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the observable game state for determinism testing and
// debug dumps.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    RunState
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.ticks,
		Score:    s.score,
		SnakeLen: s.bodyParts,
		HeadX:    s.x[0],
		HeadY:    s.y[0],
		Dir:      s.direction,
		FoodX:    s.food.X,
		FoodY:    s.food.Y,
		State:    s.run,
	}
}

// DebugState returns a string representation of the game state.
func (s *State) DebugState() string {
	snap := s.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", snap.Tick, snap.Score, snap.State)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", snap.SnakeLen, snap.Dir)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", snap.HeadX, snap.HeadY, snap.FoodX, snap.FoodY)
	return b.String()
}
