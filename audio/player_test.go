package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// TestPlayerGracefulDegradation verifies cues are safe without an audio device
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(1)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	p.Play(CueStart)
	p.Play(CuePass)
	p.Play(CueCrash)
	p.Cleanup()

	if p.Played() != 0 {
		t.Errorf("Expected no cues played without a device, got %d", p.Played())
	}
}

// TestPlayerInitialization verifies the device can be opened and released
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer(1)

	// Speaker initialization may fail in CI without audio devices
	if err := p.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := p.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got: %v", err)
	}

	p.Play(CuePass)
	if p.Played() != 1 {
		t.Errorf("Expected one played cue, got %d", p.Played())
	}
	p.Cleanup()
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(1)
	p.SetMuted(true)
	if !p.Muted() {
		t.Fatal("Expected muted")
	}
	p.Play(CueCrash)
	if p.Played() != 0 {
		t.Errorf("Muted player should not queue cues, got %d", p.Played())
	}
}

// TestCueStreamersBounded verifies every cue ends and stays within [-1, 1]
func TestCueStreamersBounded(t *testing.T) {
	for _, c := range []Cue{CueStart, CuePass, CueCrash} {
		t.Run(c.String(), func(t *testing.T) {
			s := newCueStreamer(sampleRate, c, 0.8)
			if s == nil {
				t.Fatal("Expected a streamer")
			}

			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := s.Stream(buf)
				for i := 0; i < n; i++ {
					if buf[i][0] < -1 || buf[i][0] > 1 {
						t.Fatalf("Sample %d out of range: %f", total+i, buf[i][0])
					}
				}
				total += n
				if !ok {
					break
				}
				if total > sampleRate.N(cueDurations[c])+len(buf) {
					t.Fatal("Streamer did not terminate")
				}
			}

			if want := sampleRate.N(cueDurations[c]); total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
			t.Logf("✓ %s: %d samples", c, total)
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := newCueStreamer(sampleRate, CueCrash, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, buf[i])
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if s := newCueStreamer(beep.SampleRate(8000), Cue(99), 1); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}
