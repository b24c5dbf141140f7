package physics

import (
	"testing"

	"github.com/lixenwraith/graspease/core"
)

func newBody(y, size float64) *core.Body {
	return &core.Body{Rect: core.Rect{X: 0, Y: y, Width: size, Height: size}}
}

func TestIntegrateClampsVelocity(t *testing.T) {
	b := newBody(300, 20)
	for i := 0; i < 10; i++ {
		Integrate(b, 5, 10)
		if b.VelY > 10 || b.VelY < -10 {
			t.Fatalf("tick %d: velocity %v escaped clamp", i, b.VelY)
		}
	}
	if b.VelY != 10 {
		t.Errorf("terminal velocity = %v, want 10", b.VelY)
	}
	// 5 + 10*9 = 95
	if b.Y != 395 {
		t.Errorf("y = %v, want 395", b.Y)
	}
}

func TestDriveSelectsForceFromSignal(t *testing.T) {
	b := newBody(300, 20)
	Drive(b, core.Open, -8, 4, 10)
	if b.VelY != -8 || b.Y != 292 {
		t.Errorf("open: vel=%v y=%v, want -8 292", b.VelY, b.Y)
	}
	Drive(b, core.Closed, -8, 4, 10)
	if b.VelY != -4 || b.Y != 288 {
		t.Errorf("closed: vel=%v y=%v, want -4 288", b.VelY, b.Y)
	}
}

func TestClampBoundsY(t *testing.T) {
	tests := []struct {
		name    string
		y, vel  float64
		wantY   float64
		clamped bool
	}{
		{"above top", -7, -10, 0, true},
		{"below bottom", 690, 10, 670, true},
		{"inside", 100, 3, 100, false},
		{"flush bottom", 670, 4, 670, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBody(tt.y, 30)
			b.VelY = tt.vel
			got := ClampBoundsY(b, 0, 700)
			if got != tt.clamped {
				t.Errorf("clamped = %v, want %v", got, tt.clamped)
			}
			if b.Y != tt.wantY {
				t.Errorf("y = %v, want %v", b.Y, tt.wantY)
			}
			if tt.clamped && b.VelY != 0 {
				t.Errorf("velocity not zeroed: %v", b.VelY)
			}
		})
	}
}

func TestOutOfBoundsY(t *testing.T) {
	if !OutOfBoundsY(newBody(-1, 20), 0, 700) {
		t.Error("top violation missed")
	}
	if !OutOfBoundsY(newBody(681, 20), 0, 700) {
		t.Error("bottom violation missed")
	}
	if OutOfBoundsY(newBody(680, 20), 0, 700) || OutOfBoundsY(newBody(0, 20), 0, 700) {
		t.Error("flush edges are inside the area")
	}
}

func TestRecenter(t *testing.T) {
	b := newBody(5, 20)
	b.VelY = 9
	Recenter(b, 490, 700)
	if b.X != 490 || b.Y != 340 || b.VelY != 0 {
		t.Errorf("recentered body = %+v", *b)
	}
}
