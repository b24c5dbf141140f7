package fsm

import (
	"testing"
	"time"
)

const (
	stateIdle StateID = iota + 1
	stateBusy
	stateDone
)

const (
	evGo EventType = iota + 1
	evFinish
	evAbort
)

type recorder struct {
	log   []string
	allow bool
}

func buildMachine(t *testing.T) (*Machine[*recorder], *recorder) {
	t.Helper()
	m := NewMachine[*recorder]()
	m.AddState(stateIdle, "Idle")
	m.AddState(stateBusy, "Busy")
	m.AddState(stateDone, "Done")

	m.AddTransition(stateIdle, Transition[*recorder]{Event: evGo, TargetID: stateBusy, Guard: func(r *recorder) bool { return r.allow }})
	m.AddTransition(stateBusy, Transition[*recorder]{Event: evFinish, TargetID: stateDone})
	m.AddTransition(stateBusy, Transition[*recorder]{Event: evAbort, TargetID: stateIdle})
	m.AddTransition(stateDone, Transition[*recorder]{Event: evGo, TargetID: stateBusy})

	m.OnEnter(stateIdle, func(r *recorder) { r.log = append(r.log, "enter:idle") })
	m.OnEnter(stateBusy, func(r *recorder) { r.log = append(r.log, "enter:busy") })
	m.OnExit(stateBusy, func(r *recorder) { r.log = append(r.log, "exit:busy") })
	m.OnEnter(stateDone, func(r *recorder) { r.log = append(r.log, "enter:done") })

	rec := &recorder{}
	if err := m.Init(rec, stateIdle); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return m, rec
}

func TestMachineGuardBlocksTransition(t *testing.T) {
	m, rec := buildMachine(t)

	if m.HandleEvent(rec, evGo) {
		t.Fatal("Expected guard to reject evGo")
	}
	if m.Active() != stateIdle {
		t.Errorf("Expected Idle, got %s", m.StateName(m.Active()))
	}
	if !m.Accepts(evGo) {
		t.Error("Accepts must ignore guards")
	}

	rec.allow = true
	if !m.HandleEvent(rec, evGo) {
		t.Fatal("Expected evGo to transition once guard passes")
	}
	if m.Active() != stateBusy {
		t.Errorf("Expected Busy, got %s", m.StateName(m.Active()))
	}
}

func TestMachineActionOrder(t *testing.T) {
	m, rec := buildMachine(t)
	rec.allow = true

	m.HandleEvent(rec, evGo)
	m.HandleEvent(rec, evFinish)
	m.HandleEvent(rec, evGo)

	want := []string{"enter:idle", "enter:busy", "exit:busy", "enter:done", "enter:busy"}
	if len(rec.log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, rec.log)
	}
	for i := range want {
		if rec.log[i] != want[i] {
			t.Errorf("Action %d: expected %s, got %s", i, want[i], rec.log[i])
		}
	}
}

func TestMachineUnknownEventIgnored(t *testing.T) {
	m, rec := buildMachine(t)
	if m.HandleEvent(rec, evFinish) {
		t.Error("Idle has no evFinish transition")
	}
	if m.Accepts(evAbort) {
		t.Error("Idle must not accept evAbort")
	}
}

func TestMachineTimeInStateResetsOnTransition(t *testing.T) {
	m, rec := buildMachine(t)
	rec.allow = true

	m.Update(250 * time.Millisecond)
	if m.TimeInState() != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", m.TimeInState())
	}
	m.HandleEvent(rec, evGo)
	if m.TimeInState() != 0 {
		t.Errorf("Expected reset to 0, got %v", m.TimeInState())
	}
}

func TestMachineInitValidation(t *testing.T) {
	m := NewMachine[*recorder]()
	m.AddState(stateIdle, "Idle")
	m.AddTransition(stateIdle, Transition[*recorder]{Event: evGo, TargetID: stateDone})

	if err := m.Init(&recorder{}, stateBusy); err == nil {
		t.Error("Expected error for missing initial state")
	}
	if err := m.Init(&recorder{}, stateIdle); err == nil {
		t.Error("Expected error for dangling transition target")
	}
}

func TestMachineReset(t *testing.T) {
	m, rec := buildMachine(t)
	rec.allow = true
	m.HandleEvent(rec, evGo)
	m.Reset(rec)
	if m.Active() != stateIdle {
		t.Errorf("Expected Idle after reset, got %s", m.StateName(m.Active()))
	}
}
