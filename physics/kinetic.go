package physics

import (
	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/vmath"
)

// Integrate performs one tick of vertical integration: v = clamp(v + f); y = y + v
func Integrate(b *core.Body, force, maxSpeed float64) {
	b.VelY = vmath.Clamp(b.VelY+force, -maxSpeed, maxSpeed)
	b.Y += b.VelY
}

// ClampBoundsY handles the soft wall, returns true if the body was stopped
// Keeps the body inside [minY, maxY] and zeroes velocity on contact
func ClampBoundsY(b *core.Body, minY, maxY float64) bool {
	if b.Y < minY {
		b.Y = minY
		b.VelY = 0
		return true
	}
	if b.Bottom() > maxY {
		b.Y = maxY - b.Height
		b.VelY = 0
		return true
	}
	return false
}

// OutOfBoundsY reports a hard wall violation, the body is left untouched
func OutOfBoundsY(b *core.Body, minY, maxY float64) bool {
	return b.Y < minY || b.Bottom() > maxY
}

// Recenter places the body at rest, vertically centered in [0, areaHeight]
func Recenter(b *core.Body, x, areaHeight float64) {
	b.X = x
	b.Y = areaHeight/2 - b.Height/2
	b.VelY = 0
}
