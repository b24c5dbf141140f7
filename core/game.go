package core

// GameKind selects which minigame engine is active
type GameKind uint8

const (
	GameNone GameKind = iota
	GameGravitySwitch
	GameAsteroidDodge
)

// String returns the display name of the game
func (k GameKind) String() string {
	switch k {
	case GameGravitySwitch:
		return "GRAVITY SWITCH"
	case GameAsteroidDodge:
		return "ASTEROID DODGE"
	default:
		return "NONE"
	}
}

// Initials returns the two-letter tag shown next to leaderboard entries
func (k GameKind) Initials() string {
	switch k {
	case GameGravitySwitch:
		return "GS"
	case GameAsteroidDodge:
		return "AD"
	default:
		return "--"
	}
}

// Playable reports whether the kind maps to an engine
func (k GameKind) Playable() bool {
	return k == GameGravitySwitch || k == GameAsteroidDodge
}

// Control is the binary actuator input sampled once per tick
type Control bool

const (
	Closed Control = false
	Open   Control = true
)

// IsOpen reports whether the hand is open
func (c Control) IsOpen() bool {
	return bool(c)
}

func (c Control) String() string {
	if c {
		return "OPEN"
	}
	return "CLOSED"
}
