package signal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/status"
)

// maxFrameBytes bounds a single landmark line
const maxFrameBytes = 64 * 1024

// Frame is one line of the landmark stream
// Hand=false, or an empty landmark list, means no hand was detected
type Frame struct {
	Hand      *bool      `json:"hand,omitempty"`
	Landmarks []Landmark `json:"landmarks"`
}

// Landmark is a normalized image-space point in [0, 1]
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Control classifies the frame; frames without a hand read CLOSED
func (f Frame) Control() core.Control {
	if f.Hand != nil && !*f.Hand {
		return core.Closed
	}
	points := make([]core.Point, len(f.Landmarks))
	for i, lm := range f.Landmarks {
		points[i] = core.Point{X: lm.X, Y: lm.Y}
	}
	return ClassifyHand(points)
}

// Reader turns a newline-delimited JSON landmark stream into latch updates
type Reader struct {
	src   io.Reader
	latch *Latch

	frames  func(int64) int64
	dropped func(int64) int64
}

// NewReader creates a reader publishing into latch
// reg may be nil
func NewReader(src io.Reader, latch *Latch, reg *status.Registry) *Reader {
	r := &Reader{
		src:     src,
		latch:   latch,
		frames:  func(int64) int64 { return 0 },
		dropped: func(int64) int64 { return 0 },
	}
	if reg != nil {
		r.frames = reg.Counters.Get(status.KeyFramesRead).Add
		r.dropped = reg.Counters.Get(status.KeyFramesDropped).Add
	}
	return r
}

// Run consumes the stream until EOF, a read error, or ctx cancellation
// Malformed lines are logged and skipped, the latch keeps its previous value
// On cancellation a source implementing io.Closer is closed to unblock the pending read;
// any other source keeps its scan goroutine alive until that read returns
func (r *Reader) Run(ctx context.Context) error {
	lines := make(chan []byte)
	errc := make(chan error, 1)

	if c, ok := r.src.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			if err := c.Close(); err != nil {
				log.Printf("landmarks: close source: %v", err)
			}
		})
		defer stop()
	}

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.src)
		scanner.Buffer(make([]byte, 0, 4096), maxFrameBytes)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				err := <-errc
				switch {
				case ctx.Err() != nil:
					// Reads fail once a cancelled source is closed
					return ctx.Err()
				case err == nil:
					return nil
				default:
					return fmt.Errorf("read landmarks: %w", err)
				}
			}
			r.handle(line)
		}
	}
}

func (r *Reader) handle(line []byte) {
	if len(line) == 0 {
		return
	}
	var f Frame
	if err := json.Unmarshal(line, &f); err != nil {
		r.dropped(1)
		log.Printf("landmarks: skipping malformed frame: %v", err)
		return
	}
	r.frames(1)
	r.latch.Store(f.Control())
}
