package engine

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// MaxScore caps the score counter, matching the eight-digit display of the
// classic handheld.
const MaxScore = 100_000_000 - 1

// Outcome records how a play session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// ScoreStore is the persistence boundary for high scores. Best is read once
// per session at Reset; Submit is written once at game end, and only when
// the session improved on the stored value.
type ScoreStore interface {
	Best(game string) (int, error)
	Submit(game string, score int) error
}

// Variant is a game's rule set, plugged into a Machine at construction. The
// four variants form a closed set implementing this capability surface; all
// mutable per-game state lives on the variant instance and is re-initialized
// in Spawn, so nothing is shared between machines.
type Variant interface {
	// ID is the stable identifier used for CLI commands and score storage.
	ID() string

	// Title is the human-readable display name.
	Title() string

	// EntityNames declares the machine's entity groups in draw order.
	EntityNames() []string

	// Spawn re-initializes all variant state and populates the machine's
	// entity groups with the initial shapes. Called from Reset.
	Spawn(m *Machine)

	// HandleKey consumes game-specific input. The machine has already
	// processed global keys (pause) and only forwards while running.
	HandleKey(m *Machine, ev KeyEvent)

	// Advance runs one tick of game logic: movement, spawning, collision
	// resolution, scoring. Only called while running and not paused.
	Advance(m *Machine, t uint64)

	// CheckVictory and CheckDefeat are evaluated after every Advance.
	// Victory is checked first; a simultaneous true resolves as victory.
	CheckVictory(m *Machine) bool
	CheckDefeat(m *Machine) bool
}

// Animator is an optional Variant extension for per-frame entity motion that
// runs at the raw tick rate rather than the variant's own pacing, such as
// the asteroids bullet stream.
type Animator interface {
	Animate(m *Machine, t uint64)
}

// Machine is the game state machine. It owns the entity groups, the score,
// and the lifecycle flags; the variant mutates them through the tick chain
// HandleKey -> UpdateEntities(t) -> Manage(t) -> Render. All operations are
// synchronous and single-threaded: the platform drives one call chain per
// timer tick and nothing else touches the machine.
type Machine struct {
	variant Variant
	cfg     RuntimeConfig
	store   ScoreStore
	logger  *log.Logger

	names    []string
	entities map[string]*EntityGroup

	on      bool // a session has been started at least once
	running bool // logic is advancing
	paused  bool // logic suspended; implies running
	score   int
	best    int
	outcome Outcome
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithStore attaches the high-score persistence boundary.
func WithStore(s ScoreStore) Option {
	return func(m *Machine) { m.store = s }
}

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// New constructs a machine in the idle state: not on, not running, score
// zero, one empty entity group per name the variant declares. Reset starts
// the first session.
func New(v Variant, cfg RuntimeConfig, opts ...Option) *Machine {
	if cfg.Grid.Cols <= 0 || cfg.Grid.Rows <= 0 {
		panic(fmt.Sprintf("engine: invalid grid %dx%d", cfg.Grid.Cols, cfg.Grid.Rows))
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultRuntimeConfig().TickRate
	}
	m := &Machine{
		variant:  v,
		cfg:      cfg,
		logger:   log.Default(),
		names:    v.EntityNames(),
		entities: make(map[string]*EntityGroup, len(v.EntityNames())),
	}
	for _, name := range m.names {
		m.entities[name] = &EntityGroup{}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the variant's identifier.
func (m *Machine) ID() string { return m.variant.ID() }

// Title returns the variant's display name.
func (m *Machine) Title() string { return m.variant.Title() }

// Config returns the runtime configuration.
func (m *Machine) Config() RuntimeConfig { return m.cfg }

// Grid returns the play field dimensions.
func (m *Machine) Grid() Grid { return m.cfg.Grid }

// Variant returns the rule set the machine is running.
func (m *Machine) Variant() Variant { return m.variant }

// On reports whether a session has been started.
func (m *Machine) On() bool { return m.on }

// Running reports whether game logic is advancing or pausable.
func (m *Machine) Running() bool { return m.running }

// Paused reports whether logic is suspended. Paused implies Running.
func (m *Machine) Paused() bool { return m.paused }

// Score returns the current session score.
func (m *Machine) Score() int { return m.score }

// Best returns the high score loaded at session start.
func (m *Machine) Best() int { return m.best }

// Outcome returns how the last session ended, or OutcomeNone while playing.
func (m *Machine) Outcome() Outcome { return m.outcome }

// Group returns the named entity group. Asking for an undeclared name is a
// programming error and panics.
func (m *Machine) Group(name string) *EntityGroup {
	g, ok := m.entities[name]
	if !ok {
		panic(fmt.Sprintf("engine: %s: undeclared entity group %q", m.ID(), name))
	}
	return g
}

// Reset starts a fresh session: clears every entity group, zeroes the score,
// reloads the stored high score, respawns the variant's initial entities,
// and sets the machine running. Callable from idle and from an ended game;
// calling it mid-session restarts the game.
func (m *Machine) Reset() {
	for _, name := range m.names {
		m.entities[name].Clear()
	}
	m.score = 0
	m.outcome = OutcomeNone
	m.paused = false
	m.loadBest()
	m.variant.Spawn(m)
	m.on = true
	m.running = true
}

// loadBest reads the persisted high score, degrading to 0 with a warning if
// the store is unavailable. Gameplay continues unaffected.
func (m *Machine) loadBest() {
	m.best = 0
	if m.store == nil {
		return
	}
	best, err := m.store.Best(m.ID())
	if err != nil {
		m.logger.Warn("high-score store unavailable, treating best as 0",
			"game", m.ID(), "error", err)
		return
	}
	m.best = best
}

// HandleKey routes one input event. The machine consumes the global pause
// toggle (on key press, only while running); everything else is forwarded to
// the variant. No effect while not running.
func (m *Machine) HandleKey(ev KeyEvent) {
	if !m.running {
		return
	}
	if ev.Action == ActionPause {
		if ev.Pressed {
			m.paused = !m.paused
		}
		return
	}
	m.variant.HandleKey(m, ev)
}

// UpdateEntities advances all blink timers and any variant-declared
// per-frame motion. No-op when paused or not running.
func (m *Machine) UpdateEntities(t uint64) {
	if !m.running || m.paused {
		return
	}
	for _, name := range m.names {
		for _, s := range m.entities[name].Sprites() {
			if b, ok := s.(*BlinkingBlock); ok {
				b.Tick(t)
			}
		}
	}
	if a, ok := m.variant.(Animator); ok {
		a.Animate(m, t)
	}
}

// Manage runs one core tick: variant logic, then the end-condition checks.
// Victory is evaluated before defeat, so a simultaneous true on both
// resolves deterministically as victory. When either fires, the machine
// stops running, records the outcome, and settles the score against the
// persisted high score.
func (m *Machine) Manage(t uint64) {
	if !m.running || m.paused {
		return
	}
	m.variant.Advance(m, t)
	switch {
	case m.variant.CheckVictory(m):
		m.end(OutcomeVictory)
	case m.variant.CheckDefeat(m):
		m.end(OutcomeDefeat)
	}
}

func (m *Machine) end(o Outcome) {
	m.running = false
	m.paused = false
	m.outcome = o
	if m.store == nil || m.score <= m.best {
		return
	}
	if err := m.store.Submit(m.ID(), m.score); err != nil {
		m.logger.Warn("could not persist high score",
			"game", m.ID(), "score", m.score, "error", err)
		return
	}
	m.best = m.score
}

// AddScore credits a scoring event. Scores are monotonically non-decreasing
// within a session: a negative delta is a defect in the variant's scoring
// rule and panics. The counter caps at MaxScore.
func (m *Machine) AddScore(delta int) {
	if delta < 0 {
		panic(fmt.Sprintf("engine: %s: score must not decrease (delta %d)", m.ID(), delta))
	}
	m.score += delta
	if m.score > MaxScore {
		m.score = MaxScore
	}
}

// Render clears the frame and draws every entity group in declared order,
// so groups listed later paint over earlier ones.
func (m *Machine) Render(f *Frame) {
	f.Clear()
	for _, name := range m.names {
		m.entities[name].Draw(f)
	}
}
