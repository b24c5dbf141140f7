package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init validates the graph and enters the initial state
// Every transition target must exist
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	if _, ok := m.nodes[initialID]; !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state '%s' (%d) has transition to missing state %d", node.Name, id, t.TargetID)
			}
		}
	}

	m.initialID = initialID
	m.activeID = initialID
	m.timeInState = 0
	for _, action := range m.nodes[initialID].OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances time spent in the current state
func (m *Machine[T]) Update(dt time.Duration) {
	if m.activeID != StateNone {
		m.timeInState += dt
	}
}

// HandleEvent routes an external event through the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType EventType) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition exits the current state and enters the target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeID == targetID {
		return
	}

	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeID]; ok {
		for _, action := range current.OnExit {
			action(ctx)
		}
	}

	m.activeID = targetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Reset exits the active state and re-enters the initial one
func (m *Machine[T]) Reset(ctx T) {
	if m.initialID == StateNone {
		return
	}
	m.transition(ctx, m.initialID)
}

// Active returns the current StateID
func (m *Machine[T]) Active() StateID {
	return m.activeID
}

// StateName returns the name of a state, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time elapsed in the current state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Accepts reports whether the active state has a transition for the event, ignoring guards
func (m *Machine[T]) Accepts(eventType EventType) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == eventType {
			return true
		}
	}
	return false
}
