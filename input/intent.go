package input

import "github.com/lixenwraith/graspease/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+C, q outside name editing
	IntentToggleMute  // Ctrl+S
	IntentToggleDebug // Ctrl+D
	IntentResize      // Terminal resize event

	// Session intents
	IntentStart   // 1/2 or button click on the main menu
	IntentRestart // Enter/r or game-area click on the result screen
	IntentMenu    // Esc/m or the MENU button

	// Name field
	IntentNameFocus     // n, Tab or click on the field
	IntentNameBlur      // Esc/Enter while editing, click elsewhere
	IntentTextChar      // Printable character while editing
	IntentTextBackspace // Backspace while editing

	// Pointer fallback for the hand signal
	IntentPointerPress   // Mouse button down
	IntentPointerRelease // Mouse button up
	IntentPointerToggle  // Space
)

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	Type IntentType
	Kind core.GameKind // Game for IntentStart
	Char rune          // Typed char for IntentTextChar
}
