package parameter

import "time"

// GravityTuning holds Gravity Switch constants for one tick rate
type GravityTuning struct {
	PlayerSize    float64
	Gravity       float64 // Per-tick velocity delta while CLOSED
	Lift          float64 // Per-tick velocity delta while OPEN
	MaxFall       float64
	ObstacleWidth float64
	GapHeight     float64
	ObstacleSpeed float64
	GapMargin     float64
	GapAmplitude  float64
	GapPeriod     time.Duration
	SpawnInterval time.Duration
	TrailLength   int
}

// AsteroidTuning holds Asteroid Dodge constants for one tick rate
type AsteroidTuning struct {
	PlayerSize    float64
	PlayerX       float64
	Thrust        float64 // Per-tick velocity delta while OPEN
	Drift         float64 // Per-tick velocity delta while CLOSED
	MaxSpeed      float64
	AsteroidSize  float64
	AsteroidSpeed float64
	SpawnInterval time.Duration
}

// Tuning is the full set of simulation constants handed to engines
type Tuning struct {
	Width    float64
	Height   float64
	TickRate int

	Gravity  GravityTuning
	Asteroid AsteroidTuning
}

// DefaultTuning returns the 60 Hz constants over the default game area
func DefaultTuning() Tuning {
	return Tuning{
		Width:    GameWidth,
		Height:   GameHeight,
		TickRate: BaseTickRate,
		Gravity: GravityTuning{
			PlayerSize:    GravityPlayerSize,
			Gravity:       GravityForce,
			Lift:          GravityLiftForce,
			MaxFall:       GravityMaxFallSpeed,
			ObstacleWidth: GravityObstacleWidth,
			GapHeight:     GravityGapHeight,
			ObstacleSpeed: GravityObstacleSpeed,
			GapMargin:     GravityGapMargin,
			GapAmplitude:  GravityGapAmplitude,
			GapPeriod:     GravityGapPeriod,
			SpawnInterval: GravitySpawnInterval,
			TrailLength:   GravityTrailLength,
		},
		Asteroid: AsteroidTuning{
			PlayerSize:    AsteroidPlayerSize,
			PlayerX:       AsteroidPlayerX,
			Thrust:        AsteroidThrustForce,
			Drift:         AsteroidDriftForce,
			MaxSpeed:      AsteroidMaxSpeed,
			AsteroidSize:  AsteroidSize,
			AsteroidSpeed: AsteroidSpeed,
			SpawnInterval: AsteroidSpawnInterval,
		},
	}
}

// ForTickRate rescales per-tick constants so trajectories match in wall time
// Speeds scale by k = current/target rate, forces by k² since they are applied once per tick and integrated again
// Millisecond intervals are already time-based and stay unchanged
func (t Tuning) ForTickRate(hz int) Tuning {
	if hz <= 0 || hz == t.TickRate || t.TickRate <= 0 {
		return t
	}
	k := float64(t.TickRate) / float64(hz)
	k2 := k * k

	out := t
	out.TickRate = hz

	out.Gravity.Gravity *= k2
	out.Gravity.Lift *= k2
	out.Gravity.MaxFall *= k
	out.Gravity.ObstacleSpeed *= k

	out.Asteroid.Thrust *= k2
	out.Asteroid.Drift *= k2
	out.Asteroid.MaxSpeed *= k
	out.Asteroid.AsteroidSpeed *= k
	return out
}

// WithArea returns a copy over a different logical game area
// Non-positive dimensions keep the current value
func (t Tuning) WithArea(width, height float64) Tuning {
	if width > 0 {
		t.Width = width
	}
	if height > 0 {
		t.Height = height
	}
	return t
}

// TickInterval is the wall-clock duration of one tick
func (t Tuning) TickInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / BaseTickRate
	}
	return time.Second / time.Duration(t.TickRate)
}
