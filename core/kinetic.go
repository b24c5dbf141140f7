package core

// Body is a player-controlled box that only moves vertically
// VelY is in logical pixels per tick, positive is downward
type Body struct {
	Rect
	VelY float64
}
