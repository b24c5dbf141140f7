package physics

import "github.com/lixenwraith/graspease/core"

// Drive integrates the body with openForce while the signal is OPEN, closedForce otherwise
func Drive(b *core.Body, sig core.Control, openForce, closedForce, maxSpeed float64) {
	force := closedForce
	if sig.IsOpen() {
		force = openForce
	}
	Integrate(b, force, maxSpeed)
}
