package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board geometry and pacing. All positions are in pixel units aligned to
// CellSize.
const (
	Width         = 1300
	Height        = 750
	CellSize      = 50
	InitialLength = 6
	TickInterval  = 175 * time.Millisecond

	// MaxParts is the number of cells on the board, the longest the snake can get.
	MaxParts = (Width * Height) / (CellSize * CellSize)

	Cols = Width / CellSize
	Rows = Height / CellSize
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// RunState is the lifecycle of a session.
type RunState int

const (
	Running RunState = iota
	GameOver
)

func (r RunState) String() string {
	if r == Running {
		return "running"
	}
	return "game_over"
}

// Point is a pixel position on the board.
type Point struct {
	X, Y int
}

// State holds one game session: snake geometry, food, score and run state.
// It is mutated only by Tick and HandleDirectionInput, which the caller must
// not invoke concurrently.
type State struct {
	rng   *rand.Rand
	timer core.Timer

	// x and y hold every segment the snake could ever have. Only the first
	// bodyParts entries are visible; index bodyParts trails the tail.
	x         [MaxParts]int
	y         [MaxParts]int
	bodyParts int

	direction Direction
	pending   Direction
	food      Point
	score     int
	run       RunState
	ticks     uint64
}

// NewState starts a session with the snake coiled at the origin heading right.
// timer is stopped when the game ends; it may be nil.
func NewState(rng *rand.Rand, timer core.Timer) *State {
	s := &State{
		rng:       rng,
		timer:     timer,
		bodyParts: InitialLength,
		direction: DirRight,
		pending:   DirRight,
		run:       Running,
	}
	s.placeFood()
	return s
}

// placeFood drops food on a random cell. The snake body is not excluded, so
// food may appear underneath it.
func (s *State) placeFood() {
	s.food = Point{
		X: s.rng.Intn(Cols) * CellSize,
		Y: s.rng.Intn(Rows) * CellSize,
	}
}

// HandleDirectionInput queues a turn for the next tick. A request for the
// exact opposite of the current heading is ignored, as is any input after
// the game has ended.
func (s *State) HandleDirectionInput(dir Direction) {
	if s.run != Running {
		return
	}
	if dir == s.direction.Opposite() {
		return
	}
	s.pending = dir
}

// Tick advances the simulation by one step. It does nothing once the game
// is over.
func (s *State) Tick() {
	if s.run != Running {
		return
	}
	s.ticks++
	s.direction = s.pending

	s.move()
	s.checkFood()
	s.checkCollisions()
}

func (s *State) move() {
	// Walk from the tail toward the head so nothing is overwritten before it
	// is read. The slot just past the tail keeps the old tail position for
	// when the snake grows.
	for i := min(s.bodyParts, MaxParts-1); i > 0; i-- {
		s.x[i] = s.x[i-1]
		s.y[i] = s.y[i-1]
	}

	switch s.direction {
	case DirUp:
		s.y[0] -= CellSize
	case DirDown:
		s.y[0] += CellSize
	case DirLeft:
		s.x[0] -= CellSize
	case DirRight:
		s.x[0] += CellSize
	}
}

func (s *State) checkFood() {
	if s.x[0] != s.food.X || s.y[0] != s.food.Y {
		return
	}
	if s.bodyParts < MaxParts {
		s.bodyParts++
	}
	s.score++
	s.placeFood()
}

func (s *State) checkCollisions() {
	for i := min(s.bodyParts, MaxParts-1); i > 0; i-- {
		if s.x[0] == s.x[i] && s.y[0] == s.y[i] {
			s.run = GameOver
		}
	}

	if s.x[0] < 0 || s.x[0] >= Width || s.y[0] < 0 || s.y[0] >= Height {
		s.run = GameOver
	}

	if s.run == GameOver && s.timer != nil {
		s.timer.Stop()
	}
}

// IsRunning reports whether the session is still in play.
func (s *State) IsRunning() bool {
	return s.run == Running
}

// RunState returns the current lifecycle state.
func (s *State) RunState() RunState {
	return s.run
}

// Segments returns a copy of the visible snake, head first.
func (s *State) Segments() []Point {
	segs := make([]Point, s.bodyParts)
	for i := range segs {
		segs[i] = Point{X: s.x[i], Y: s.y[i]}
	}
	return segs
}

// Head returns the head position.
func (s *State) Head() Point {
	return Point{X: s.x[0], Y: s.y[0]}
}

// Len returns the number of visible segments.
func (s *State) Len() int {
	return s.bodyParts
}

// Food returns the current food position.
func (s *State) Food() Point {
	return s.food
}

// Score returns the number of food items eaten.
func (s *State) Score() int {
	return s.score
}

// Direction returns the heading used by the last tick.
func (s *State) Direction() Direction {
	return s.direction
}

// Ticks returns the number of simulation steps taken.
func (s *State) Ticks() uint64 {
	return s.ticks
}
