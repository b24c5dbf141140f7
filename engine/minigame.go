package engine

import (
	"time"

	"github.com/lixenwraith/graspease/core"
)

// Outcome is the result of advancing an engine by one tick
type Outcome uint8

const (
	Continue Outcome = iota
	// Terminated ends the run: collision or hard boundary violation
	Terminated
)

func (o Outcome) String() string {
	if o == Terminated {
		return "TERMINATED"
	}
	return "CONTINUE"
}

// MinigameEngine is one real-time game simulation
// Engines are not safe for concurrent use, the session serializes all calls
type MinigameEngine interface {
	Kind() core.GameKind

	// Reset starts a fresh run: score 0, player centered, no hazards, spawn timer at now
	Reset(now time.Time)

	// Advance runs one tick with the clock value read by the caller
	Advance(now time.Time, sig core.Control) Outcome

	Score() int

	// Spawned counts hazards created since the last Reset
	Spawned() int

	// Frame returns a copy of the renderable state
	Frame() Frame
}

// Frame is the renderer-facing view of an engine
// Slices are owned by the Frame and never alias engine state
type Frame struct {
	Kind      core.GameKind
	Player    core.Body
	Score     int
	Elapsed   time.Duration // Since the last Reset
	Obstacles []core.Obstacle
	Asteroids []core.Asteroid
	Trail     []core.Point // Oldest first
}
