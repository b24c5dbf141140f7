package minigame

import (
	"time"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/engine"
	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/physics"
	"github.com/lixenwraith/graspease/vmath"
)

// AsteroidDodge is the thrust/drift game: OPEN thrusts up, CLOSED drifts down
// Top and bottom are soft walls, only asteroids end a run
type AsteroidDodge struct {
	cfg    parameter.AsteroidTuning
	width  float64
	height float64
	rng    *vmath.FastRand

	player    core.Body
	asteroids []core.Asteroid
	score     int
	spawned   int

	runStart  time.Time
	lastSpawn time.Time
	now       time.Time
}

// NewAsteroidDodge creates an engine; call Reset before the first Advance
func NewAsteroidDodge(tuning parameter.Tuning, rng *vmath.FastRand) *AsteroidDodge {
	cfg := tuning.Asteroid
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return &AsteroidDodge{
		cfg:    cfg,
		width:  tuning.Width,
		height: tuning.Height,
		rng:    rng,
		player: core.Body{Rect: core.Rect{Width: cfg.PlayerSize, Height: cfg.PlayerSize}},
	}
}

func (a *AsteroidDodge) Kind() core.GameKind {
	return core.GameAsteroidDodge
}

// Reset starts a fresh run with the ship at its fixed column, vertically centered
func (a *AsteroidDodge) Reset(now time.Time) {
	physics.Recenter(&a.player, a.cfg.PlayerX, a.height)
	a.asteroids = a.asteroids[:0]
	a.score = 0
	a.spawned = 0
	a.runStart = now
	a.lastSpawn = now
	a.now = now
}

// Advance runs spawn, integration, soft wall, asteroid motion, collision and scoring in that order
// The wall is applied before collision so the ship is never observed outside the area
func (a *AsteroidDodge) Advance(now time.Time, sig core.Control) engine.Outcome {
	a.now = now
	a.spawn(now)

	physics.Drive(&a.player, sig, a.cfg.Thrust, a.cfg.Drift, a.cfg.MaxSpeed)
	physics.ClampBoundsY(&a.player, 0, a.height)

	hit := false
	kept := a.asteroids[:0]
	for _, ast := range a.asteroids {
		ast.X -= a.cfg.AsteroidSpeed

		if !hit && vmath.RectsOverlap(a.player.Rect, ast.Rect()) {
			hit = true
		}
		if !hit && !ast.Passed && ast.Right() < a.cfg.PlayerX {
			ast.Passed = true
			a.score++
		}
		if ast.Right() > 0 {
			kept = append(kept, ast)
		}
	}
	a.asteroids = kept

	if hit {
		return engine.Terminated
	}
	return engine.Continue
}

// spawn adds an asteroid at the right edge at a uniformly random height
func (a *AsteroidDodge) spawn(now time.Time) {
	if now.Sub(a.lastSpawn) <= a.cfg.SpawnInterval {
		return
	}
	maxY := int(a.height - a.cfg.AsteroidSize)
	if maxY < 0 {
		maxY = 0
	}
	a.asteroids = append(a.asteroids, core.Asteroid{
		X:    a.width,
		Y:    float64(a.rng.IntRange(0, maxY)),
		Size: a.cfg.AsteroidSize,
	})
	a.spawned++
	a.lastSpawn = now
}

func (a *AsteroidDodge) Score() int {
	return a.score
}

func (a *AsteroidDodge) Spawned() int {
	return a.spawned
}

func (a *AsteroidDodge) Frame() engine.Frame {
	return engine.Frame{
		Kind:      core.GameAsteroidDodge,
		Player:    a.player,
		Score:     a.score,
		Elapsed:   a.now.Sub(a.runStart),
		Asteroids: append([]core.Asteroid(nil), a.asteroids...),
	}
}
