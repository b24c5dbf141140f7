// Package minigame implements the two real-time engines driven by the hand control signal
package minigame

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/engine"
	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/vmath"
)

// ErrUnknownGame is returned for a GameKind without an engine
var ErrUnknownGame = errors.New("unknown game kind")

// New constructs the engine for kind
// seed drives hazard placement; engines with the same seed and inputs replay identically
func New(kind core.GameKind, tuning parameter.Tuning, seed uint64) (engine.MinigameEngine, error) {
	switch kind {
	case core.GameGravitySwitch:
		return NewGravitySwitch(tuning), nil
	case core.GameAsteroidDodge:
		return NewAsteroidDodge(tuning, vmath.NewFastRand(seed)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGame, kind)
	}
}
