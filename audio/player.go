// Package audio plays short feedback cues through the system speaker
// Every call degrades to a no-op when no audio device is available
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player mixes one-shot cues into a single speaker stream
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
	muted       atomic.Bool
	played      atomic.Int64
}

// NewPlayer creates a player at volume in [0, 1]; call Initialize to open the device
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker with a 100ms buffer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops queued cues and detaches from the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// SetMuted silences future cues without closing the device
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played counts cues that reached the mixer
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Play queues cue; ignored when muted or uninitialized
func (p *Player) Play(c Cue) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := newCueStreamer(sampleRate, c, p.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.played.Add(1)
}
