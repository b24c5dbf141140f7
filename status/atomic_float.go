package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64 stored as bits
// Zero value is ready to use (represents 0.0)
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a value atomically
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the value atomically
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}
