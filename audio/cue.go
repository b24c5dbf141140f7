package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a one-shot sound tied to a session event
type Cue uint8

const (
	CueStart Cue = iota // Run began
	CuePass             // Hazard cleared
	CueCrash            // Run ended
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CuePass:
		return "pass"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// cueDurations bounds every one-shot so the mixer drops finished streamers
var cueDurations = map[Cue]time.Duration{
	CueStart: 180 * time.Millisecond,
	CuePass:  120 * time.Millisecond,
	CueCrash: 300 * time.Millisecond,
}

// newCueStreamer builds the bounded streamer for cue at volume in [0, 1]
func newCueStreamer(sr beep.SampleRate, c Cue, volume float64) beep.Streamer {
	total := sr.N(cueDurations[c])

	var gen beep.Streamer
	switch c {
	case CueStart:
		gen = NewChirpGenerator(sr, 300, 900, cueDurations[c])
	case CuePass:
		gen = newCoin(sr, 988, 1319, total/3)
	case CueCrash:
		gen = NewCrashGenerator(sr, 120)
	default:
		return nil
	}
	return newVolume(beep.Take(total, gen), volume)
}

// newCoin plays low for split samples then switches to high
func newCoin(sr beep.SampleRate, low, high float64, split int) beep.Streamer {
	lowTone, err := generators.SineTone(sr, low)
	if err != nil {
		return beep.Silence(-1)
	}
	highTone, err := generators.SineTone(sr, high)
	if err != nil {
		return beep.Silence(-1)
	}
	return newVolume(beep.Seq(beep.Take(split, lowTone), highTone), 0.15)
}

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ChirpGenerator sweeps linearly from one frequency to another over its length
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a rising or falling sweep
func NewChirpGenerator(sr beep.SampleRate, from, to float64, length time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: max(sr.N(length), 1),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Accumulated phase keeps the sweep click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1 - progress
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrashGenerator mixes a decaying low buzz with noise
type CrashGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	seed uint32
}

// NewCrashGenerator creates a crash sound around freq
func NewCrashGenerator(sr beep.SampleRate, freq float64) *CrashGenerator {
	return &CrashGenerator{
		sr:   sr,
		freq: freq,
		seed: 0x9e3779b9,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Min(t/0.005, 1) * math.Exp(-t*10)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		buzz := 0.3*math.Sin(2*math.Pi*g.freq*t) + 0.15*math.Sin(2*math.Pi*g.freq*2*t)
		sample := 0.5 * envelope * (buzz + 0.2*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
