// Package render draws session snapshots onto a tcell screen
package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/leaderboard"
	"github.com/lixenwraith/graspease/session"
	"github.com/lixenwraith/graspease/status"
)

// UIState is front-end state that lives outside the session
type UIState struct {
	NameInput   string // Name being edited on the main menu
	NameActive  bool   // Name field has focus
	PointerMode bool   // No landmark stream, mouse button drives the signal
	Muted       bool
	Debug       bool   // Draw the metrics overlay
	Notice      string // One-line message for the status bar
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen  tcell.Screen
	printer *message.Printer
	metrics *status.Registry
	width   float64 // Logical game area
	height  float64
}

// NewTerminalRenderer creates a renderer for a logical area of width x height
// metrics may be nil, the debug overlay is then skipped
func NewTerminalRenderer(screen tcell.Screen, width, height float64, metrics *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		printer: message.NewPrinter(language.English),
		metrics: metrics,
		width:   width,
		height:  height,
	}
}

// Layout returns the regions for the current screen size
func (r *TerminalRenderer) Layout() Layout {
	cols, rows := r.screen.Size()
	return ScreenLayout(cols, rows)
}

// RenderFrame renders the entire frame for snap
func (r *TerminalRenderer) RenderFrame(snap session.Snapshot, ui UIState) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(base)
	r.screen.Clear()

	l := r.Layout()
	r.drawHUD(l, snap, base)

	switch snap.State {
	case session.MainMenu:
		r.drawMenu(l, ui, base)
	case session.Running:
		r.drawGame(l, snap, base)
	case session.GameOver:
		r.drawGame(l, snap, base)
		r.drawGameOver(l, snap, base)
	}

	r.drawLeaderboard(l.Board, snap.Top, base)
	r.drawStatus(l, snap, ui, base)
	if ui.Debug {
		r.drawDebug(l, base)
	}

	r.screen.Show()
}

// FormatScore renders a score with thousands separators
func (r *TerminalRenderer) FormatScore(score int) string {
	return r.printer.Sprintf("%d", score)
}

func (r *TerminalRenderer) drawHUD(l Layout, snap session.Snapshot, base tcell.Style) {
	if l.HUD.Empty() {
		return
	}
	r.fill(l.HUD, ' ', base.Background(RgbStatusBg))
	hud := base.Background(RgbStatusBg)

	if snap.State == session.MainMenu {
		r.text(1, 0, "GRASPEASE  hand rehabilitation games", hud.Foreground(RgbCyan).Bold(true))
		return
	}

	x := r.text(1, 0, snap.Kind.String(), hud.Foreground(accentColor(snap.Kind)).Bold(true))
	x = r.text(x+2, 0, "SCORE ", hud.Foreground(RgbDim))
	x = r.text(x, 0, r.FormatScore(snap.Score), hud.Foreground(RgbYellow).Bold(true))
	r.text(x+2, 0, snap.PlayerName, hud)

	if !l.Back.Empty() {
		r.text(l.Back.X, l.Back.Y, "[ MENU ]", hud.Foreground(RgbYellow))
	}
}

func (r *TerminalRenderer) drawMenu(l Layout, ui UIState, base tcell.Style) {
	m := MenuLayout(l)

	title := "CHOOSE YOUR EXERCISE"
	r.text(m.Title.X+(m.Title.W-len(title))/2, m.Title.Y, title, base.Foreground(RgbCyan).Bold(true))

	r.text(m.Name.X-len(nameLabel), m.Name.Y, nameLabel, base.Foreground(RgbDim))
	fieldStyle := base.Foreground(RgbDim)
	if ui.NameActive {
		fieldStyle = base.Foreground(RgbCyan)
	}
	field := "[" + ui.NameInput
	if ui.NameActive {
		field += "_"
	}
	for utf8.RuneCountInString(field) < m.Name.W-1 {
		field += " "
	}
	r.text(m.Name.X, m.Name.Y, field+"]", fieldStyle)

	for _, b := range m.Buttons {
		accent := accentColor(b.Kind)
		r.border(b.Box, base.Foreground(accent))
		inner := b.Box.W - 2
		r.text(b.Box.X+1+max((inner-len(b.Label))/2, 0), b.Box.Y+1, b.Label, base.Foreground(accent).Bold(true))
		r.text(b.Box.X+1+max((inner-len(b.Hint))/2, 0), b.Box.Y+2, b.Hint, base.Foreground(RgbDim))
	}
}

func (r *TerminalRenderer) drawGame(l Layout, snap session.Snapshot, base tcell.Style) {
	if l.Game.Empty() {
		return
	}
	vp := Viewport{Box: l.Game, Width: r.width, Height: r.height}
	frame := snap.Frame

	switch frame.Kind {
	case core.GameGravitySwitch:
		obstacle := base.Foreground(RgbObstacle)
		for _, o := range frame.Obstacles {
			r.fill(vp.Cells(o.TopRect()), '█', obstacle)
			r.fill(vp.Cells(o.BottomRect(r.height)), '█', obstacle)
		}
		for i, p := range frame.Trail {
			progress := float64(i+1) / float64(len(frame.Trail)+1)
			x, y := vp.Cell(p.X, p.Y)
			r.screen.SetContent(x, y, '·', nil, base.Foreground(TrailColor(progress)))
		}
		r.fill(vp.Cells(frame.Player.Rect), '●', base.Foreground(RgbBall).Bold(true))

	case core.GameAsteroidDodge:
		rock := base.Foreground(RgbAsteroid)
		for _, a := range frame.Asteroids {
			r.fill(vp.Cells(a.Rect()), '▓', rock)
		}
		r.fill(vp.Cells(frame.Player.Rect), '▶', base.Foreground(RgbShip).Bold(true))
	}
}

func (r *TerminalRenderer) drawGameOver(l Layout, snap session.Snapshot, base tcell.Style) {
	area := l.Game
	if area.Empty() {
		return
	}
	center := func(y int, s string, style tcell.Style) {
		r.text(area.X+max((area.W-utf8.RuneCountInString(s))/2, 0), y, s, style)
	}

	y := area.Y + area.H/3
	center(y, "EXERCISE COMPLETE", base.Foreground(RgbRed).Bold(true))
	center(y+2, "Final Score: "+r.FormatScore(snap.Score), base)
	if snap.Last != nil && snap.Last.Admitted {
		center(y+3, "New top score!", base.Foreground(RgbGreen))
	}
	center(area.Y+area.H*2/3, "CLICK GAME AREA OR PRESS ENTER TO RESTART", base.Foreground(RgbYellow))
}

func (r *TerminalRenderer) drawLeaderboard(box Box, top []leaderboard.Entry, base tcell.Style) {
	if box.Empty() {
		return
	}
	r.border(box, base.Foreground(RgbPurple))
	r.text(box.X+2, box.Y+1, "TOP SCORES", base.Foreground(RgbCyan).Bold(true))

	if len(top) == 0 {
		r.text(box.X+2, box.Y+3, "No scores yet.", base.Foreground(RgbDim))
		r.text(box.X+2, box.Y+4, "Be the first!", base.Foreground(RgbDim))
		return
	}

	inner := box.W - 4
	for i, e := range top {
		y := box.Y + 3 + i
		if y >= box.Y+box.H-1 {
			break
		}
		score := r.FormatScore(e.Score)
		name := fmt.Sprintf("%d. %s (%s)", i+1, e.Name, e.Kind.Initials())
		if room := inner - len(score) - 1; utf8.RuneCountInString(name) > room && room > 0 {
			name = string([]rune(name)[:room])
		}
		r.text(box.X+2, y, name, base)
		r.text(box.X+2+inner-len(score), y, score, base.Foreground(RgbYellow))
	}
}

func (r *TerminalRenderer) drawStatus(l Layout, snap session.Snapshot, ui UIState, base tcell.Style) {
	if l.Status.Empty() {
		return
	}
	bar := base.Background(RgbStatusBg)
	r.fill(l.Status, ' ', bar)

	var hint string
	switch snap.State {
	case session.MainMenu:
		hint = "type name  1/2 or click to start  q quit"
	case session.Running:
		hint = "esc menu  q quit"
	case session.GameOver:
		hint = "enter restart  esc menu  q quit"
	}

	action := "FALL/DRIFT"
	if snap.Signal.IsOpen() {
		action = "LIFT/THRUST"
	}
	x := r.text(1, l.Status.Y, "HAND ", bar.Foreground(RgbDim))
	x = r.text(x, l.Status.Y, fmt.Sprintf("%s (%s)", snap.Signal, action), bar.Foreground(signalColor(snap.Signal)).Bold(true))

	source := "camera"
	if ui.PointerMode {
		source = "mouse"
	}
	x = r.text(x+2, l.Status.Y, source, bar.Foreground(RgbDim))
	if ui.Muted {
		x = r.text(x+2, l.Status.Y, "muted", bar.Foreground(RgbDim))
	}
	if ui.Notice != "" {
		x = r.text(x+2, l.Status.Y, ui.Notice, bar.Foreground(RgbRed).Bold(true))
	}
	r.text(max(x+2, l.Status.W-len(hint)-1), l.Status.Y, hint, bar.Foreground(RgbDim))
}

func (r *TerminalRenderer) drawDebug(l Layout, base tcell.Style) {
	if r.metrics == nil {
		return
	}
	style := base.Foreground(RgbGreen)
	lines := r.metrics.Lines()
	y := l.Game.Y + l.Game.H - len(lines)
	for _, line := range lines {
		if y >= l.Game.Y {
			r.text(l.Game.X+1, y, line, style)
		}
		y++
	}
}

// text draws s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) fill(b Box, ch rune, style tcell.Style) {
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) border(b Box, style tcell.Style) {
	if b.W < 2 || b.H < 2 {
		return
	}
	right, bottom := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < right; x++ {
		r.screen.SetContent(x, b.Y, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := b.Y + 1; y < bottom; y++ {
		r.screen.SetContent(b.X, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(b.X, b.Y, '┌', nil, style)
	r.screen.SetContent(right, b.Y, '┐', nil, style)
	r.screen.SetContent(b.X, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}
