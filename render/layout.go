package render

import (
	"math"

	"github.com/lixenwraith/graspease/core"
)

// Panel sizes in cells
const (
	boardWidth   = 30
	buttonWidth  = 36
	buttonHeight = 4
	buttonGap    = 1
	nameWidth    = 17 // 15 runes plus brackets
	nameLabel    = "PLAYER NAME: "
	backWidth    = 8
	minGameCols  = 20
	minGameRows  = 8
)

// Box is an axis-aligned cell rectangle
type Box struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside the box
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Layout splits the terminal into fixed regions
// Row 0 is the HUD, the last row is the status line, the leaderboard takes the right column when it fits
type Layout struct {
	Cols, Rows int
	HUD        Box
	Game       Box
	Board      Box
	Back       Box // Return-to-menu button inside the HUD
	Status     Box
}

// ScreenLayout computes the regions for a cols x rows terminal
func ScreenLayout(cols, rows int) Layout {
	l := Layout{Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 {
		return l
	}

	l.HUD = Box{X: 0, Y: 0, W: cols, H: 1}
	l.Status = Box{X: 0, Y: rows - 1, W: cols, H: 1}

	gameCols := cols
	if cols-boardWidth >= minGameCols {
		gameCols = cols - boardWidth
		l.Board = Box{X: gameCols, Y: 1, W: boardWidth, H: max(rows-2, 0)}
	}
	l.Game = Box{X: 0, Y: 1, W: gameCols, H: max(rows-2, 0)}
	if l.Game.H < minGameRows {
		// Tiny terminals give the whole body to the game area
		l.Board = Box{}
		l.Game = Box{X: 0, Y: 1, W: cols, H: max(rows-2, 0)}
	}

	if cols >= backWidth {
		l.Back = Box{X: cols - backWidth, Y: 0, W: backWidth, H: 1}
	}
	return l
}

// Button is a clickable game selector on the main menu
type Button struct {
	Kind  core.GameKind
	Box   Box
	Label string
	Hint  string
}

// Menu is the main-menu arrangement inside the game region
// Both drawing and pointer hit-testing read from the same Menu value
type Menu struct {
	Title   Box
	Name    Box
	Buttons []Button
}

// MenuLayout centers the title, name field and game buttons in the game region of l
func MenuLayout(l Layout) Menu {
	area := l.Game
	centerX := area.X + area.W/2

	bw := min(buttonWidth, area.W)
	blockH := 2*buttonHeight + buttonGap
	top := area.Y + max((area.H-blockH-4)/2, 0)

	nameX := centerX - (len(nameLabel)+nameWidth)/2 + len(nameLabel)
	m := Menu{
		Title: Box{X: area.X, Y: top, W: area.W, H: 1},
		Name:  Box{X: nameX, Y: top + 2, W: nameWidth, H: 1},
	}

	btnY := top + 4
	m.Buttons = []Button{
		{
			Kind:  core.GameGravitySwitch,
			Box:   Box{X: centerX - bw/2, Y: btnY, W: bw, H: buttonHeight},
			Label: "[1] GRAVITY SWITCH",
			Hint:  "Open hand lifts the ball",
		},
		{
			Kind:  core.GameAsteroidDodge,
			Box:   Box{X: centerX - bw/2, Y: btnY + buttonHeight + buttonGap, W: bw, H: buttonHeight},
			Label: "[2] ASTEROID DODGE",
			Hint:  "Open hand thrusts the ship",
		},
	}
	return m
}

// HitButton returns the game whose button covers cell (x, y)
func (m Menu) HitButton(x, y int) (core.GameKind, bool) {
	for _, b := range m.Buttons {
		if b.Box.Contains(x, y) {
			return b.Kind, true
		}
	}
	return core.GameNone, false
}

// Viewport maps logical game coordinates onto the cells of a Box
type Viewport struct {
	Box    Box
	Width  float64 // Logical width
	Height float64 // Logical height
}

// Cell returns the cell holding logical point (x, y), clamped into the box
func (v Viewport) Cell(x, y float64) (int, int) {
	cx := v.Box.X + int(math.Floor(x*float64(v.Box.W)/v.Width))
	cy := v.Box.Y + int(math.Floor(y*float64(v.Box.H)/v.Height))
	return min(max(cx, v.Box.X), v.Box.X+v.Box.W-1), min(max(cy, v.Box.Y), v.Box.Y+v.Box.H-1)
}

// Cells returns the cell span covered by logical rect r, at least one cell in each axis
// Parts outside the viewport are clipped; a rect fully outside yields an empty Box
func (v Viewport) Cells(r core.Rect) Box {
	sx := float64(v.Box.W) / v.Width
	sy := float64(v.Box.H) / v.Height

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(int(math.Ceil(r.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*sy)), y0+1)

	x0, x1 = max(x0, 0), min(x1, v.Box.W)
	y0, y1 = max(y0, 0), min(y1, v.Box.H)
	if x1 <= x0 || y1 <= y0 {
		return Box{}
	}
	return Box{X: v.Box.X + x0, Y: v.Box.Y + y0, W: x1 - x0, H: y1 - y0}
}
