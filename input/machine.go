package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/graspease/render"
)

// Machine parses tcell events into semantic intents
// It keeps the previous mouse button state to turn tcell's level-triggered mouse events into press/release edges
type Machine struct {
	keyTable *KeyTable
	pressed  bool
}

// NewMachine creates a parser with the default bindings
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
	}
}

// Parse converts ev into an intent for mode; layout supplies the clickable regions
func (m *Machine) Parse(ev tcell.Event, mode InputMode, layout render.Layout) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.parseKey(ev, mode)
	case *tcell.EventMouse:
		return m.parseMouse(ev, mode, layout)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) parseKey(ev *tcell.EventKey, mode InputMode) Intent {
	if entry, ok := m.keyTable.GlobalKeys[ev.Key()]; ok {
		return Intent{Type: entry.IntentType, Kind: entry.Kind}
	}
	if entry, ok := m.keyTable.ModeKeys[mode][ev.Key()]; ok {
		return Intent{Type: entry.IntentType, Kind: entry.Kind}
	}
	if ev.Key() != tcell.KeyRune {
		return Intent{}
	}

	if mode == ModeNameEdit {
		if unicode.IsPrint(ev.Rune()) {
			return Intent{Type: IntentTextChar, Char: ev.Rune()}
		}
		return Intent{}
	}
	if entry, ok := m.keyTable.ModeRunes[mode][ev.Rune()]; ok {
		return Intent{Type: entry.IntentType, Kind: entry.Kind}
	}
	return Intent{}
}

func (m *Machine) parseMouse(ev *tcell.EventMouse, mode InputMode, layout render.Layout) Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	wasDown := m.pressed
	m.pressed = down

	if !down {
		// Any mode: a press can outlive the run that saw it
		if wasDown {
			return Intent{Type: IntentPointerRelease}
		}
		return Intent{}
	}
	if wasDown {
		// Drag with the button held
		return Intent{}
	}

	x, y := ev.Position()
	switch mode {
	case ModeMenu, ModeNameEdit:
		menu := render.MenuLayout(layout)
		if menu.Name.Contains(x, y) {
			return Intent{Type: IntentNameFocus}
		}
		if kind, ok := menu.HitButton(x, y); ok {
			return Intent{Type: IntentStart, Kind: kind}
		}
		if mode == ModeNameEdit {
			return Intent{Type: IntentNameBlur}
		}
	case ModeRunning:
		if layout.Back.Contains(x, y) {
			return Intent{Type: IntentMenu}
		}
		return Intent{Type: IntentPointerPress}
	case ModeGameOver:
		if layout.Back.Contains(x, y) {
			return Intent{Type: IntentMenu}
		}
		if layout.Game.Contains(x, y) {
			return Intent{Type: IntentRestart}
		}
	}
	return Intent{}
}
