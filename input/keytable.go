package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/graspease/core"
)

// KeyEntry describes a key's action without function pointers
type KeyEntry struct {
	IntentType IntentType
	Kind       core.GameKind
}

// KeyTable maps keys to intents per mode
type KeyTable struct {
	// Keys honoured in every mode
	GlobalKeys map[tcell.Key]KeyEntry

	// Special keys per mode (Enter, Esc, Tab, Backspace)
	ModeKeys map[InputMode]map[tcell.Key]KeyEntry

	// Rune bindings per mode; ModeNameEdit types every rune instead
	ModeRunes map[InputMode]map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		GlobalKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {IntentType: IntentQuit},
			tcell.KeyCtrlQ: {IntentType: IntentQuit},
			tcell.KeyCtrlS: {IntentType: IntentToggleMute},
			tcell.KeyCtrlD: {IntentType: IntentToggleDebug},
		},

		ModeKeys: map[InputMode]map[tcell.Key]KeyEntry{
			ModeMenu: {
				tcell.KeyTab:    {IntentType: IntentNameFocus},
				tcell.KeyEscape: {IntentType: IntentQuit},
			},
			ModeNameEdit: {
				tcell.KeyEnter:      {IntentType: IntentNameBlur},
				tcell.KeyEscape:     {IntentType: IntentNameBlur},
				tcell.KeyTab:        {IntentType: IntentNameBlur},
				tcell.KeyBackspace:  {IntentType: IntentTextBackspace},
				tcell.KeyBackspace2: {IntentType: IntentTextBackspace},
			},
			ModeRunning: {
				tcell.KeyEscape: {IntentType: IntentMenu},
			},
			ModeGameOver: {
				tcell.KeyEnter:  {IntentType: IntentRestart},
				tcell.KeyEscape: {IntentType: IntentMenu},
			},
		},

		ModeRunes: map[InputMode]map[rune]KeyEntry{
			ModeMenu: {
				'1': {IntentType: IntentStart, Kind: core.GameGravitySwitch},
				'2': {IntentType: IntentStart, Kind: core.GameAsteroidDodge},
				'n': {IntentType: IntentNameFocus},
				'q': {IntentType: IntentQuit},
			},
			ModeRunning: {
				' ': {IntentType: IntentPointerToggle},
				'm': {IntentType: IntentMenu},
				'q': {IntentType: IntentQuit},
			},
			ModeGameOver: {
				'r': {IntentType: IntentRestart},
				'm': {IntentType: IntentMenu},
				'q': {IntentType: IntentQuit},
			},
		},
	}
}
