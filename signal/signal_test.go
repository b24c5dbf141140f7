package signal

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/status"
)

func TestClassify(t *testing.T) {
	pinky := core.Point{X: 0.5, Y: 0.5}
	tests := []struct {
		name     string
		wrist    core.Point
		indexTip core.Point
		want     core.Control
	}{
		{"zero reference distance", pinky, core.Point{X: 0.9, Y: 0.1}, core.Closed},
		{"wide spread", core.Point{X: 0.5, Y: 0.6}, core.Point{X: 0.5, Y: 0.3}, core.Open},              // ratio 2.0
		{"closed fist", core.Point{X: 0.5, Y: 0.6}, core.Point{X: 0.5, Y: 0.55}, core.Closed},           // ratio 0.5
		{"just below threshold", core.Point{X: 0.5, Y: 0.7}, core.Point{X: 0.5, Y: 0.295}, core.Closed}, // ratio 1.025
		{"just above threshold", core.Point{X: 0.5, Y: 0.7}, core.Point{X: 0.5, Y: 0.28}, core.Open},    // ratio 1.1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.wrist, tt.indexTip, pinky); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyHandShortInput(t *testing.T) {
	if ClassifyHand(make([]core.Point, LandmarkPinkyBase)) != core.Closed {
		t.Error("Expected CLOSED for a truncated landmark set")
	}
}

func TestLatchDefaultsClosed(t *testing.T) {
	var l Latch
	if l.Load() != core.Closed || l.Updates() != 0 {
		t.Fatal("Expected fresh latch to read CLOSED")
	}
	l.Store(core.Open)
	l.Store(core.Open)
	if l.Load() != core.Open || l.Updates() != 2 {
		t.Errorf("Expected OPEN after 2 updates, got %s after %d", l.Load(), l.Updates())
	}
}

func TestPointerHoldSemantics(t *testing.T) {
	var l Latch
	p := NewPointer(&l)

	p.Press()
	if l.Load() != core.Open {
		t.Error("Expected OPEN while pressed")
	}
	p.Release()
	if l.Load() != core.Closed {
		t.Error("Expected CLOSED after release")
	}
	p.Toggle()
	if l.Load() != core.Open {
		t.Error("Expected toggle to open")
	}
}

// hand builds a 21-point frame line with the given wrist/index/pinky points
func hand(wristY, indexY float64) string {
	pts := make([]string, LandmarkCount)
	for i := range pts {
		pts[i] = `{"x":0.5,"y":0.5}`
	}
	pts[LandmarkWrist] = `{"x":0.5,"y":` + ftoa(wristY) + `}`
	pts[LandmarkIndexTip] = `{"x":0.5,"y":` + ftoa(indexY) + `}`
	return `{"landmarks":[` + strings.Join(pts, ",") + `]}`
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func TestReaderPublishesFrames(t *testing.T) {
	reg := status.NewRegistry()
	var l Latch

	stream := strings.Join([]string{
		hand(0.6, 0.3), // open
		"not json",
		"",
		hand(0.6, 0.55), // closed
		hand(0.6, 0.3),  // open
	}, "\n")

	r := NewReader(strings.NewReader(stream), &l, reg)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if l.Load() != core.Open {
		t.Errorf("Expected final value OPEN, got %s", l.Load())
	}
	if l.Updates() != 3 {
		t.Errorf("Expected 3 updates, got %d", l.Updates())
	}
	if got := reg.Counters.Get(status.KeyFramesRead).Load(); got != 3 {
		t.Errorf("Expected 3 frames counted, got %d", got)
	}
	if got := reg.Counters.Get(status.KeyFramesDropped).Load(); got != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", got)
	}
}

func TestReaderNoHandIsClosed(t *testing.T) {
	var l Latch
	l.Store(core.Open)

	r := NewReader(strings.NewReader(`{"hand":false}`+"\n"+`{"landmarks":[]}`), &l, nil)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Load() != core.Closed {
		t.Error("Expected CLOSED when no hand is reported")
	}
}

func TestReaderStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var l Latch
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewReader(pr, &l, nil).Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Reader did not stop after cancel")
	}
}

// blockingSource blocks every read until closed
type blockingSource struct {
	closed chan struct{}
}

func (b *blockingSource) Read([]byte) (int, error) {
	<-b.closed
	return 0, io.ErrClosedPipe
}

func (b *blockingSource) Close() error {
	close(b.closed)
	return nil
}

func TestReaderClosesSourceOnCancel(t *testing.T) {
	src := &blockingSource{closed: make(chan struct{})}
	var l Latch
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewReader(src, &l, nil).Run(ctx) }()
	cancel()

	select {
	case <-src.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Source was not closed after cancel")
	}
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Reader did not stop after cancel")
	}
	t.Logf("✓ pending read released by closing the source")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReaderReportsReadError(t *testing.T) {
	var l Latch
	err := NewReader(failingReader{}, &l, nil).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "device gone") {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}
