package vmath

import "github.com/lixenwraith/graspease/core"

// RectContains checks if point is within rect, right and bottom edges exclusive
func RectContains(r core.Rect, x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
