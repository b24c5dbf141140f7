package minigame

import (
	"math"
	"time"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/engine"
	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/physics"
	"github.com/lixenwraith/graspease/vmath"
)

// GravitySwitch is the obstacle-gap game: OPEN lifts the ball, CLOSED lets it fall
type GravitySwitch struct {
	cfg    parameter.GravityTuning
	width  float64
	height float64

	player    core.Body
	obstacles []core.Obstacle
	trail     []core.Point
	score     int
	spawned   int

	runStart  time.Time
	lastSpawn time.Time
	now       time.Time
}

// NewGravitySwitch creates an engine; call Reset before the first Advance
func NewGravitySwitch(tuning parameter.Tuning) *GravitySwitch {
	cfg := tuning.Gravity
	return &GravitySwitch{
		cfg:    cfg,
		width:  tuning.Width,
		height: tuning.Height,
		player: core.Body{Rect: core.Rect{Width: cfg.PlayerSize, Height: cfg.PlayerSize}},
	}
}

func (g *GravitySwitch) Kind() core.GameKind {
	return core.GameGravitySwitch
}

// Reset starts a fresh run with the ball centered in the area
func (g *GravitySwitch) Reset(now time.Time) {
	physics.Recenter(&g.player, g.width/2-g.cfg.PlayerSize/2, g.height)
	g.obstacles = g.obstacles[:0]
	g.trail = g.trail[:0]
	g.score = 0
	g.spawned = 0
	g.runStart = now
	g.lastSpawn = now
	g.now = now
}

// Advance runs spawn, integration, obstacle motion, collision, scoring and the hard boundary in that order
func (g *GravitySwitch) Advance(now time.Time, sig core.Control) engine.Outcome {
	g.now = now
	g.spawn(now)

	physics.Drive(&g.player, sig, g.cfg.Lift, g.cfg.Gravity, g.cfg.MaxFall)
	g.pushTrail(g.player.Center())

	hit := false
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= g.cfg.ObstacleSpeed

		if !hit && g.collides(o) {
			hit = true
		}
		// No scoring once the run has ended on this tick
		if !hit && !o.Passed && o.Right() < g.player.X {
			o.Passed = true
			g.score++
		}
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept

	if hit {
		return engine.Terminated
	}
	if physics.OutOfBoundsY(&g.player, 0, g.height) {
		return engine.Terminated
	}
	return engine.Continue
}

// spawn adds an obstacle at the right edge once the interval has elapsed
// Gap center oscillates with elapsed run time between the margins
func (g *GravitySwitch) spawn(now time.Time) {
	if now.Sub(g.lastSpawn) <= g.cfg.SpawnInterval {
		return
	}
	g.obstacles = append(g.obstacles, core.Obstacle{
		X:         g.width,
		GapY:      g.gapCenter(now.Sub(g.runStart)),
		Width:     g.cfg.ObstacleWidth,
		GapHeight: g.cfg.GapHeight,
	})
	g.spawned++
	g.lastSpawn = now
}

// gapCenter evaluates min + (max - min) * (0.5 + A * sin(t / period))
func (g *GravitySwitch) gapCenter(elapsed time.Duration) float64 {
	minY := g.cfg.GapMargin
	maxY := g.height - g.cfg.GapMargin
	phase := 0.0
	if g.cfg.GapPeriod > 0 {
		phase = float64(elapsed) / float64(g.cfg.GapPeriod)
	}
	return math.Trunc(minY + (maxY-minY)*(0.5+g.cfg.GapAmplitude*math.Sin(phase)))
}

// collides tests the ball against both solid parts of an obstacle it horizontally overlaps
func (g *GravitySwitch) collides(o core.Obstacle) bool {
	if !vmath.SpansOverlap(g.player.X, g.player.Right(), o.X, o.Right()) {
		return false
	}
	return vmath.RectsOverlap(g.player.Rect, o.TopRect()) ||
		vmath.RectsOverlap(g.player.Rect, o.BottomRect(g.height))
}

func (g *GravitySwitch) pushTrail(p core.Point) {
	if g.cfg.TrailLength <= 0 {
		return
	}
	if len(g.trail) >= g.cfg.TrailLength {
		copy(g.trail, g.trail[1:])
		g.trail = g.trail[:len(g.trail)-1]
	}
	g.trail = append(g.trail, p)
}

func (g *GravitySwitch) Score() int {
	return g.score
}

func (g *GravitySwitch) Spawned() int {
	return g.spawned
}

func (g *GravitySwitch) Frame() engine.Frame {
	return engine.Frame{
		Kind:      core.GameGravitySwitch,
		Player:    g.player,
		Score:     g.score,
		Elapsed:   g.now.Sub(g.runStart),
		Obstacles: append([]core.Obstacle(nil), g.obstacles...),
		Trail:     append([]core.Point(nil), g.trail...),
	}
}
