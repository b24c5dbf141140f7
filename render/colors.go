package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/graspease/core"
)

// Neon palette over a dark background
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbDim        = tcell.NewRGBColor(150, 150, 150) // Gray
	RgbCyan       = tcell.NewRGBColor(0, 255, 255)
	RgbYellow     = tcell.NewRGBColor(255, 255, 0)
	RgbMagenta    = tcell.NewRGBColor(255, 0, 200)
	RgbRed        = tcell.NewRGBColor(255, 60, 60)
	RgbGreen      = tcell.NewRGBColor(57, 255, 20)
	RgbPurple     = tcell.NewRGBColor(150, 60, 220)

	RgbObstacle = tcell.NewRGBColor(0, 200, 120)
	RgbAsteroid = tcell.NewRGBColor(160, 110, 70)
	RgbBall     = RgbYellow
	RgbShip     = RgbCyan

	RgbStatusBg = tcell.NewRGBColor(60, 60, 90)
)

// accentColor is the per-game highlight used for buttons and the HUD title
func accentColor(kind core.GameKind) tcell.Color {
	switch kind {
	case core.GameGravitySwitch:
		return RgbCyan
	case core.GameAsteroidDodge:
		return RgbMagenta
	default:
		return RgbText
	}
}

// signalColor is cyan while OPEN and yellow while CLOSED
func signalColor(c core.Control) tcell.Color {
	if c.IsOpen() {
		return RgbCyan
	}
	return RgbYellow
}

// TrailColor fades from the ball color toward the background
// progress is 0.0 for the oldest trail point and 1.0 for the newest
func TrailColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbBackground
	}
	if progress > 1.0 {
		progress = 1.0
	}

	br, bg, bb := RgbBackground.RGB()
	fr, fg, fb := RgbBall.RGB()
	lerp := func(a, b int32) int32 {
		return a + int32(float64(b-a)*progress)
	}
	return tcell.NewRGBColor(lerp(br, fr), lerp(bg, fg), lerp(bb, fb))
}
