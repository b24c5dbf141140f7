// Package session orchestrates menu, running and game-over phases around the active minigame engine
package session

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/engine"
	"github.com/lixenwraith/graspease/engine/fsm"
	"github.com/lixenwraith/graspease/leaderboard"
	"github.com/lixenwraith/graspease/minigame"
	"github.com/lixenwraith/graspease/parameter"
	"github.com/lixenwraith/graspease/status"
)

// Sentinel errors
var (
	ErrInvalidName       = errors.New("player name must not be blank")
	ErrInvalidTransition = errors.New("transition not allowed")
	ErrUnknownGame       = minigame.ErrUnknownGame
)

// Options configures a Machine; zero fields take defaults
type Options struct {
	Tuning      parameter.Tuning
	Clock       engine.TimeProvider
	Leaderboard *leaderboard.Leaderboard
	Metrics     *status.Registry
	Seed        uint64        // Base seed for hazard placement, 0 = time based
	NewRunID    func() string // Defaults to a random UUID
	Hooks       Hooks
}

// Machine owns the session state, the active engine and the current run
// All methods are safe for concurrent use
type Machine struct {
	mu sync.Mutex

	fsm     *fsm.Machine[*Machine]
	tuning  parameter.Tuning
	clock   engine.TimeProvider
	board   *leaderboard.Leaderboard
	hooks   Hooks
	newID   func() string
	seed    uint64
	runs    uint64
	build   func(core.GameKind, parameter.Tuning, uint64) (engine.MinigameEngine, error)
	metrics sessionMetrics

	kind      core.GameKind
	name      string
	runID     string
	active    engine.MinigameEngine
	runStart  time.Time
	lastTick  time.Time
	lastScore int
	signal    core.Control
	last      *Result
}

// sessionMetrics caches registry pointers, nil registry leaves them detached
type sessionMetrics struct {
	ticks    *atomic.Int64
	started  *atomic.Int64
	ended    *atomic.Int64
	spawned  *atomic.Int64
	passes   *atomic.Int64
	admitted *atomic.Int64
	open     *atomic.Bool
}

func newSessionMetrics(reg *status.Registry) sessionMetrics {
	if reg == nil {
		return sessionMetrics{
			ticks: new(atomic.Int64), started: new(atomic.Int64), ended: new(atomic.Int64),
			spawned: new(atomic.Int64), passes: new(atomic.Int64), admitted: new(atomic.Int64),
			open: new(atomic.Bool),
		}
	}
	return sessionMetrics{
		ticks:    reg.Counters.Get(status.KeyTicks),
		started:  reg.Counters.Get(status.KeyRunsStarted),
		ended:    reg.Counters.Get(status.KeyRunsEnded),
		spawned:  reg.Counters.Get(status.KeyHazardsSpawned),
		passes:   reg.Counters.Get(status.KeyPasses),
		admitted: reg.Counters.Get(status.KeyAdmitted),
		open:     reg.Flags.Get(status.KeySignalOpen),
	}
}

// New builds the session graph and enters MAIN_MENU
func New(opts Options) (*Machine, error) {
	if opts.Tuning.TickRate == 0 {
		opts.Tuning = parameter.DefaultTuning()
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Leaderboard == nil {
		opts.Leaderboard = leaderboard.New(parameter.LeaderboardCapacity)
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	m := &Machine{
		fsm:     fsm.NewMachine[*Machine](),
		tuning:  opts.Tuning,
		clock:   opts.Clock,
		board:   opts.Leaderboard,
		hooks:   opts.Hooks,
		newID:   opts.NewRunID,
		seed:    opts.Seed,
		build:   minigame.New,
		metrics: newSessionMetrics(opts.Metrics),
	}

	m.fsm.AddState(fsm.StateID(MainMenu), MainMenu.String())
	m.fsm.AddState(fsm.StateID(Running), Running.String())
	m.fsm.AddState(fsm.StateID(GameOver), GameOver.String())

	m.fsm.AddTransition(fsm.StateID(MainMenu), fsm.Transition[*Machine]{Event: eventStart, TargetID: fsm.StateID(Running), Guard: (*Machine).ready})
	m.fsm.AddTransition(fsm.StateID(Running), fsm.Transition[*Machine]{Event: eventCollide, TargetID: fsm.StateID(GameOver)})
	m.fsm.AddTransition(fsm.StateID(Running), fsm.Transition[*Machine]{Event: eventMenu, TargetID: fsm.StateID(MainMenu)})
	m.fsm.AddTransition(fsm.StateID(GameOver), fsm.Transition[*Machine]{Event: eventRestart, TargetID: fsm.StateID(Running), Guard: (*Machine).ready})
	m.fsm.AddTransition(fsm.StateID(GameOver), fsm.Transition[*Machine]{Event: eventMenu, TargetID: fsm.StateID(MainMenu)})

	m.fsm.OnEnter(fsm.StateID(MainMenu), (*Machine).enterMenu)
	m.fsm.OnEnter(fsm.StateID(Running), (*Machine).enterRunning)
	m.fsm.OnEnter(fsm.StateID(GameOver), (*Machine).enterGameOver)

	if err := m.fsm.Init(m, fsm.StateID(MainMenu)); err != nil {
		return nil, fmt.Errorf("build session state machine: %w", err)
	}
	return m, nil
}

// Start leaves MAIN_MENU and begins a run of kind for name
// A blank name is rejected with ErrInvalidName and the session stays in MAIN_MENU
func (m *Machine) Start(kind core.GameKind, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = normalizeName(name)
	if name == "" {
		return ErrInvalidName
	}
	if !m.fsm.Accepts(eventStart) {
		return m.rejected(eventStart)
	}

	eng, err := m.build(kind, m.tuning, m.seed+m.runs)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	m.kind = kind
	m.name = name
	m.active = eng
	if !m.fsm.HandleEvent(m, eventStart) {
		return m.rejected(eventStart)
	}
	return nil
}

// Restart replays the same game for the same player from GAME_OVER
// The engine is rebuilt so every run gets its own spawn seed
func (m *Machine) Restart() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fsm.Accepts(eventRestart) {
		return m.rejected(eventRestart)
	}
	eng, err := m.build(m.kind, m.tuning, m.seed+m.runs)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}

	prev := m.active
	m.active = eng
	if !m.fsm.HandleEvent(m, eventRestart) {
		m.active = prev
		return m.rejected(eventRestart)
	}
	return nil
}

// ReturnToMenu abandons the current run or result screen without touching the leaderboard
func (m *Machine) ReturnToMenu() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fsm.HandleEvent(m, eventMenu) {
		return m.rejected(eventMenu)
	}
	return nil
}

// Tick advances the active engine by one step and returns the resulting state
// Outside RUNNING it only records the signal
func (m *Machine) Tick(sig core.Control) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.signal = sig
	m.metrics.open.Store(sig.IsOpen())
	if m.state() != Running {
		return m.state()
	}

	now := m.clock.Now()
	m.fsm.Update(now.Sub(m.lastTick))
	m.lastTick = now
	m.metrics.ticks.Add(1)

	spawnedBefore := m.active.Spawned()
	outcome := m.active.Advance(now, sig)
	m.metrics.spawned.Add(int64(m.active.Spawned() - spawnedBefore))

	if score := m.active.Score(); score > m.lastScore {
		m.metrics.passes.Add(int64(score - m.lastScore))
		m.lastScore = score
		if m.hooks.OnPass != nil {
			m.hooks.OnPass(score)
		}
	}

	if outcome == engine.Terminated {
		m.fsm.HandleEvent(m, eventCollide)
	}
	return m.state()
}

// State returns the current phase
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state()
}

// Kind returns the selected game, GameNone in MAIN_MENU
func (m *Machine) Kind() core.GameKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kind
}

// Score returns the score of the current or just-finished run
func (m *Machine) Score() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return 0
	}
	return m.active.Score()
}

// Leaderboard returns the ranking shared by every run
func (m *Machine) Leaderboard() *leaderboard.Leaderboard {
	return m.board
}

// Snapshot copies the renderable state
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		State:      m.state(),
		Kind:       m.kind,
		PlayerName: m.name,
		RunID:      m.runID,
		Signal:     m.signal,
		Top:        m.board.Top(),
	}
	if m.active != nil {
		snap.Frame = m.active.Frame()
		snap.Score = snap.Frame.Score
	}
	if m.last != nil {
		last := *m.last
		snap.Last = &last
	}
	return snap
}

func (m *Machine) state() State {
	return State(m.fsm.Active())
}

// ready guards entry into RUNNING
func (m *Machine) ready() bool {
	return m.active != nil && m.kind.Playable() && m.name != ""
}

func (m *Machine) rejected(ev fsm.EventType) error {
	return fmt.Errorf("%s from %s: %w", eventNames[ev], m.state(), ErrInvalidTransition)
}

// enterRunning resets the engine for a fresh run
func (m *Machine) enterRunning() {
	now := m.clock.Now()
	m.active.Reset(now)
	m.runStart = now
	m.lastTick = now
	m.lastScore = 0
	m.runID = m.newID()
	m.runs++
	m.metrics.started.Add(1)

	log.Printf("run %s started: %s for %q", m.runID, m.kind, m.name)
	if m.hooks.OnRunStart != nil {
		m.hooks.OnRunStart(m.kind, m.runID)
	}
}

// enterGameOver commits the run to the leaderboard
func (m *Machine) enterGameOver() {
	score := m.active.Score()
	res := Result{
		Name:     m.name,
		Score:    score,
		Kind:     m.kind,
		RunID:    m.runID,
		Duration: m.lastTick.Sub(m.runStart),
	}
	res.Admitted = m.board.Submit(m.name, score, m.kind, m.runID)
	if res.Admitted {
		m.metrics.admitted.Add(1)
	}
	m.metrics.ended.Add(1)
	m.last = &res

	log.Printf("run %s over: %s score=%d admitted=%t after %v", res.RunID, res.Kind, res.Score, res.Admitted, res.Duration)
	if m.hooks.OnGameOver != nil {
		m.hooks.OnGameOver(res)
	}
}

// enterMenu drops the active engine and game selection
func (m *Machine) enterMenu() {
	m.kind = core.GameNone
	m.active = nil
	m.runID = ""
	m.lastScore = 0
}

// normalizeName trims surrounding space and caps the name at the menu input limit
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > parameter.PlayerNameMaxLen {
		name = string([]rune(name)[:parameter.PlayerNameMaxLen])
	}
	return strings.TrimSpace(name)
}
