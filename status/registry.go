package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the session and the signal readers
const (
	KeyTicks          = "ticks"
	KeyRunsStarted    = "runs.started"
	KeyRunsEnded      = "runs.ended"
	KeyHazardsSpawned = "hazards.spawned"
	KeyPasses         = "passes"
	KeyAdmitted       = "leaderboard.admitted"
	KeySignalOpen     = "signal.open"
	KeyFramesRead     = "landmarks.frames"
	KeyFramesDropped  = "landmarks.dropped"
	KeyTickLoad       = "tick.load" // Fraction of the tick budget spent in Tick
)

// Registry is the central metrics facade
// The session caches pointers at construction; the tick loop writes directly to atomics
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Flags    *MetricMap[atomic.Bool]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Flags:    NewMetricMap[atomic.Bool](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Lines renders every metric as "key=value" in a stable order for the debug overlay
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Counters.Count()+r.Flags.Count()+r.Gauges.Count())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Flags.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	r.Gauges.Range(func(key string, v *Gauge) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return lines
}
