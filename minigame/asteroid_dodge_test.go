package minigame

import (
	"testing"
	"time"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/engine"
	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/vmath"
)

func newAsteroid(t *testing.T, seed uint64) *AsteroidDodge {
	t.Helper()
	a := NewAsteroidDodge(parameter.DefaultTuning(), vmath.NewFastRand(seed))
	a.Reset(epoch)
	return a
}

func TestAsteroidDodgeResetPlacesShip(t *testing.T) {
	a := newAsteroid(t, 1)
	p := a.Frame().Player
	if p.X != parameter.AsteroidPlayerX || p.Y != 335 || p.VelY != 0 {
		t.Errorf("Expected ship at (50, 335) at rest, got %+v", p)
	}
}

func TestAsteroidDodgeHoldsTopWhileThrusting(t *testing.T) {
	a := newAsteroid(t, 1)
	a.player.Y = 0

	now := epoch
	for i := 0; i < 180; i++ {
		now = now.Add(tick)
		if out := a.Advance(now, core.Open); out != engine.Continue {
			t.Fatalf("Tick %d: soft wall must never terminate, got %s", i, out)
		}
		p := a.Frame().Player
		if p.Y != 0 || p.VelY != 0 {
			t.Fatalf("Tick %d: expected clamp at top with zero velocity, got y=%v v=%v", i, p.Y, p.VelY)
		}
	}
}

func TestAsteroidDodgeDriftClampsAtBottom(t *testing.T) {
	a := newAsteroid(t, 1)
	a.player.Y = 0

	maxY := parameter.GameHeight - parameter.AsteroidPlayerSize
	now := epoch
	reachedBottom := false
	for i := 0; i < 180; i++ {
		now = now.Add(tick)
		a.Advance(now, core.Closed)
		p := a.Frame().Player
		if p.Y < 0 || p.Y > float64(maxY) {
			t.Fatalf("Tick %d: y=%v outside [0, %d]", i, p.Y, maxY)
		}
		if p.Y == float64(maxY) {
			reachedBottom = true
		}
	}
	if !reachedBottom {
		t.Error("Expected drift to reach the bottom wall within 3s")
	}
}

func TestAsteroidDodgeVelocityClamped(t *testing.T) {
	a := newAsteroid(t, 3)
	now := epoch
	for i := 0; i < 400; i++ {
		now = now.Add(tick)
		a.Advance(now, core.Control((i/11)%2 == 0))
		if v := a.Frame().Player.VelY; v > parameter.AsteroidMaxSpeed || v < -parameter.AsteroidMaxSpeed {
			t.Fatalf("Tick %d: velocity %v escaped clamp", i, v)
		}
	}
}

func TestAsteroidDodgeSpawnPlacement(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		a := newAsteroid(t, seed)
		a.Advance(epoch.Add(1501*time.Millisecond), core.Closed)
		f := a.Frame()
		if len(f.Asteroids) != 1 {
			t.Fatalf("Seed %d: expected one asteroid, got %d", seed, len(f.Asteroids))
		}
		ast := f.Asteroids[0]
		if ast.Y < 0 || ast.Y > parameter.GameHeight-parameter.AsteroidSize {
			t.Errorf("Seed %d: asteroid y=%v outside [0, %d]", seed, ast.Y, parameter.GameHeight-parameter.AsteroidSize)
		}
		if ast.X != parameter.GameWidth-parameter.AsteroidSpeed {
			t.Errorf("Seed %d: expected spawn at right edge, got x=%v", seed, ast.X)
		}
	}
}

func TestAsteroidDodgeCollisionTerminates(t *testing.T) {
	a := newAsteroid(t, 1)
	a.asteroids = append(a.asteroids, core.Asteroid{X: 60, Y: 300, Size: 100})

	if out := a.Advance(epoch.Add(tick), core.Closed); out != engine.Terminated {
		t.Errorf("Expected TERMINATED, got %s", out)
	}
}

func TestAsteroidDodgeScoresOnce(t *testing.T) {
	a := newAsteroid(t, 1)
	// Trailing edge lands at 49 after one move, just behind the ship's 50
	a.asteroids = append(a.asteroids, core.Asteroid{X: -45, Y: 300, Size: 100})

	now := epoch
	for i := 0; i < 5; i++ {
		now = now.Add(tick)
		a.Advance(now, core.Control(i%2 == 0))
		if a.Score() != 1 {
			t.Fatalf("Tick %d: expected score 1, got %d", i, a.Score())
		}
	}
}

func TestAsteroidDodgeDeterministicForSeed(t *testing.T) {
	a, b := newAsteroid(t, 99), newAsteroid(t, 99)
	now := epoch
	for i := 0; i < 600; i++ {
		now = now.Add(tick)
		sig := core.Control((i/20)%2 == 0)
		oa, ob := a.Advance(now, sig), b.Advance(now, sig)
		if oa != ob {
			t.Fatalf("Tick %d: outcomes diverged", i)
		}
		fa, fb := a.Frame(), b.Frame()
		if fa.Player != fb.Player || len(fa.Asteroids) != len(fb.Asteroids) {
			t.Fatalf("Tick %d: frames diverged", i)
		}
		if oa == engine.Terminated {
			break
		}
	}
}

func TestNewSelectsEngineByKind(t *testing.T) {
	tun := parameter.DefaultTuning()
	for _, kind := range []core.GameKind{core.GameGravitySwitch, core.GameAsteroidDodge} {
		e, err := New(kind, tun, 1)
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		if e.Kind() != kind {
			t.Errorf("New(%s) built %s", kind, e.Kind())
		}
	}
	if _, err := New(core.GameNone, tun, 1); err == nil {
		t.Error("Expected error for GameNone")
	}
}
