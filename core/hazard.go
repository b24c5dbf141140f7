package core

// Obstacle is a Gravity Switch wall with a vertical gap
type Obstacle struct {
	X         float64
	GapY      float64 // Gap center
	Width     float64
	GapHeight float64
	Passed    bool
}

// Right returns the trailing edge of the obstacle
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopRect is the solid part from the top of the area down to the gap
func (o Obstacle) TopRect() Rect {
	return Rect{X: o.X, Y: 0, Width: o.Width, Height: o.GapY - o.GapHeight/2}
}

// BottomRect is the solid part from the gap down to the bottom of the area
func (o Obstacle) BottomRect(areaHeight float64) Rect {
	top := o.GapY + o.GapHeight/2
	return Rect{X: o.X, Y: top, Width: o.Width, Height: areaHeight - top}
}

// Asteroid is an Asteroid Dodge hazard, square hitbox at a fixed height
type Asteroid struct {
	X      float64
	Y      float64
	Size   float64
	Passed bool
}

// Right returns the trailing edge of the asteroid
func (a Asteroid) Right() float64 {
	return a.X + a.Size
}

// Rect returns the hitbox
func (a Asteroid) Rect() Rect {
	return Rect{X: a.X, Y: a.Y, Width: a.Size, Height: a.Size}
}
