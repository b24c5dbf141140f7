// Package input turns terminal key and mouse events into session actions and pointer signals
package input

import (
	"errors"
	"log"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/render"
	"github.com/lixenwraith/graspease/session"
	"github.com/lixenwraith/graspease/signal"
)

// Muter is the audio control the handler toggles
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// Handler processes user input events
// Not safe for concurrent use, events are handled on the main loop goroutine
type Handler struct {
	session *session.Machine
	pointer *signal.Pointer // nil when a landmark stream drives the signal
	sound   Muter
	layout  func() render.Layout
	machine *Machine

	name       []rune
	nameActive bool
	debug      bool
	notice     string
}

// NewHandler creates a handler; pointer and sound may be nil
func NewHandler(s *session.Machine, pointer *signal.Pointer, sound Muter, layout func() render.Layout, name string) *Handler {
	h := &Handler{
		session: s,
		pointer: pointer,
		sound:   sound,
		layout:  layout,
		machine: NewMachine(),
	}
	for _, r := range name {
		h.appendRune(r)
	}
	return h
}

// SetDebug sets the metrics overlay flag
func (h *Handler) SetDebug(debug bool) {
	h.debug = debug
}

// UI returns the front-end state for the renderer
func (h *Handler) UI() render.UIState {
	ui := render.UIState{
		NameInput:   string(h.name),
		NameActive:  h.nameActive,
		PointerMode: h.pointer != nil,
		Debug:       h.debug,
		Notice:      h.notice,
	}
	if h.sound != nil {
		ui.Muted = h.sound.Muted()
	}
	return ui
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	mode := modeFor(h.session.State(), h.nameActive)
	return h.Apply(h.machine.Parse(ev, mode, h.layout()))
}

// Apply executes one intent and returns false on quit
func (h *Handler) Apply(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false

	case IntentToggleMute:
		if h.sound != nil {
			h.sound.SetMuted(!h.sound.Muted())
		}

	case IntentToggleDebug:
		h.debug = !h.debug

	case IntentStart:
		h.nameActive = false
		h.start(in)

	case IntentRestart:
		h.releasePointer()
		if err := h.session.Restart(); err != nil {
			log.Printf("restart: %v", err)
		}

	case IntentMenu:
		h.releasePointer()
		if err := h.session.ReturnToMenu(); err != nil {
			log.Printf("menu: %v", err)
		}

	case IntentNameFocus:
		h.nameActive = true
		h.notice = ""

	case IntentNameBlur:
		h.nameActive = false

	case IntentTextChar:
		h.appendRune(in.Char)

	case IntentTextBackspace:
		if len(h.name) > 0 {
			h.name = h.name[:len(h.name)-1]
		}

	case IntentPointerPress:
		if h.pointer != nil {
			h.pointer.Press()
		}

	case IntentPointerRelease:
		h.releasePointer()

	case IntentPointerToggle:
		if h.pointer != nil {
			h.pointer.Toggle()
		}
	}
	return true
}

func (h *Handler) start(in Intent) {
	err := h.session.Start(in.Kind, string(h.name))
	switch {
	case err == nil:
		h.notice = ""
		h.releasePointer()
	case errors.Is(err, session.ErrInvalidName):
		h.notice = "Enter a player name first"
		h.nameActive = true
	default:
		log.Printf("start %s: %v", in.Kind, err)
	}
}

func (h *Handler) appendRune(r rune) {
	if len(h.name) >= parameter.PlayerNameMaxLen || !utf8.ValidRune(r) {
		return
	}
	h.name = append(h.name, r)
}

func (h *Handler) releasePointer() {
	if h.pointer != nil {
		h.pointer.Release()
	}
}
