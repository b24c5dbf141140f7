package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// EventType identifies an external trigger routed through HandleEvent
type EventType int

// Machine is a flat, event-driven finite state machine
// T is the context type passed to actions and guards (e.g., *session.Machine)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	// Runtime state
	initialID   StateID
	activeID    StateID
	timeInState time.Duration
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Event    EventType
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
