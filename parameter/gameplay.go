package parameter

import "time"

// Logical game area, renderers scale it to their surface
const (
	GameWidth  = 1000
	GameHeight = 700
)

// BaseTickRate is the cadence every per-tick constant below is tuned for
const BaseTickRate = 60

// Gravity Switch
const (
	GravityPlayerSize    = 20
	GravityForce         = 5
	GravityLiftForce     = -5
	GravityMaxFallSpeed  = 10
	GravityObstacleWidth = 30
	GravityGapHeight     = 150
	GravityObstacleSpeed = 5
	GravitySpawnInterval = 4000 * time.Millisecond
	GravityGapMargin     = 100 // Gap center keeps this far from top and bottom
	GravityGapAmplitude  = 0.3
	GravityGapPeriod     = 1500 * time.Millisecond // Divisor of elapsed time inside sin()
	GravityTrailLength   = 10
)

// Asteroid Dodge
const (
	AsteroidPlayerSize    = 30
	AsteroidPlayerX       = 50
	AsteroidThrustForce   = -8
	AsteroidDriftForce    = 4
	AsteroidMaxSpeed      = 10
	AsteroidSize          = 100
	AsteroidSpeed         = 6
	AsteroidSpawnInterval = 1500 * time.Millisecond
)

// Session
const (
	LeaderboardCapacity = 10
	PlayerNameMaxLen    = 15
	DefaultPlayerName   = "Rehab Player"
)

// Hand classifier
const (
	HandOpenThreshold = 1.05
)
