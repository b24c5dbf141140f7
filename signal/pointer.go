package signal

import "github.com/lixenwraith/graspease/core"

// Pointer is the fallback source when no hand tracker is attached
// OPEN exactly while the button is held
type Pointer struct {
	latch *Latch
}

// NewPointer publishes button state into latch
func NewPointer(latch *Latch) *Pointer {
	return &Pointer{latch: latch}
}

// Press marks the button held
func (p *Pointer) Press() {
	p.latch.Store(core.Open)
}

// Release marks the button released
func (p *Pointer) Release() {
	p.latch.Store(core.Closed)
}

// Toggle flips the current value, for terminals that cannot report key release
func (p *Pointer) Toggle() {
	p.latch.Store(!p.latch.Load())
}
