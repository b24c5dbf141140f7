package session

import (
	"time"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/engine"
	"github.com/lixenwraith/graspease/engine/fsm"
	"github.com/lixenwraith/graspease/leaderboard"
)

// State is the session phase
type State fsm.StateID

const (
	StateNone State = iota
	MainMenu
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "MAIN_MENU"
	case Running:
		return "RUNNING"
	case GameOver:
		return "GAME_OVER"
	default:
		return "NONE"
	}
}

// Session events routed through the state machine
const (
	eventStart fsm.EventType = iota + 1
	eventCollide
	eventRestart
	eventMenu
)

var eventNames = map[fsm.EventType]string{
	eventStart:   "start",
	eventCollide: "collide",
	eventRestart: "restart",
	eventMenu:    "return to menu",
}

// Result describes a finished run
type Result struct {
	Name     string
	Score    int
	Kind     core.GameKind
	RunID    string
	Duration time.Duration
	Admitted bool // Entered the leaderboard
}

// Snapshot is everything a renderer needs for one frame
// All slices are copies, safe to read from any goroutine
type Snapshot struct {
	State      State
	Kind       core.GameKind
	PlayerName string
	RunID      string
	Score      int
	Signal     core.Control // Last value fed to Tick
	Frame      engine.Frame // Zero in MainMenu
	Last       *Result      // Most recent finished run, nil before the first game over
	Top        []leaderboard.Entry
}

// Hooks observe session lifecycle; called with the session lock held and must not call back into the Machine
type Hooks struct {
	OnRunStart func(kind core.GameKind, runID string)
	OnPass     func(score int)
	OnGameOver func(Result)
}
