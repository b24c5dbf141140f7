package input

import "github.com/lixenwraith/graspease/session"

// InputMode is the parser context derived from the session state and name focus
type InputMode uint8

const (
	ModeMenu InputMode = iota
	ModeNameEdit
	ModeRunning
	ModeGameOver
)

// modeFor maps session state to the parser mode
func modeFor(state session.State, nameActive bool) InputMode {
	switch state {
	case session.Running:
		return ModeRunning
	case session.GameOver:
		return ModeGameOver
	default:
		if nameActive {
			return ModeNameEdit
		}
		return ModeMenu
	}
}
