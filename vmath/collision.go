package vmath

import "github.com/lixenwraith/graspease/core"

// SpansOverlap reports whether open intervals (a0, a1) and (b0, b1) intersect
// Touching edges do not overlap
func SpansOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// RectsOverlap is the AABB test used by every hazard
// Rects with no area never overlap anything
func RectsOverlap(a, b core.Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return SpansOverlap(a.X, a.Right(), b.X, b.Right()) &&
		SpansOverlap(a.Y, a.Bottom(), b.Y, b.Bottom())
}
