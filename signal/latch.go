// Package signal produces the per-tick OPEN/CLOSED control value
// Producers run on their own goroutines and publish into a Latch; the tick loop only ever reads the latest value
package signal

import (
	"sync/atomic"

	"github.com/lixenwraith/graspease/core"
)

// Source is read once per tick by the simulation
type Source interface {
	Load() core.Control
}

// Latch holds the most recently delivered control value
// Zero value is ready to use and reads CLOSED until the first Store
type Latch struct {
	open    atomic.Bool
	updates atomic.Uint64
}

// Store publishes a new value, never blocks
func (l *Latch) Store(c core.Control) {
	l.open.Store(c.IsOpen())
	l.updates.Add(1)
}

// Load returns the latest value
func (l *Latch) Load() core.Control {
	return core.Control(l.open.Load())
}

// Updates returns how many values have been delivered
func (l *Latch) Updates() uint64 {
	return l.updates.Load()
}
