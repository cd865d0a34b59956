package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pmoroz/brickgame/internal/config"
	"github.com/pmoroz/brickgame/internal/engine"
	"github.com/pmoroz/brickgame/internal/registry"
	"github.com/pmoroz/brickgame/internal/storage"
)

// GameModel is the Bubble Tea model for running one game machine.
type GameModel struct {
	gameID  string
	machine *engine.Machine
	frame   *engine.Frame
	store   *storage.Store
	cfg     config.Config
	logger  *log.Logger

	keys *KeyMapper
	hold *holdTracker
	tick uint64

	width      int
	height     int
	recorded   bool // play history saved for the current run
	quitting   bool
	backToMenu bool
}

// newMachine builds a machine for the given game with a fresh seed.
func newMachine(gameID string, store *storage.Store, cfg config.Config, logger *log.Logger, seed int64) (*engine.Machine, error) {
	v, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if store != nil {
		opts = append(opts, engine.WithStore(store))
	}
	return engine.New(v, cfg.Runtime(seed), opts...), nil
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A zero seed means seed from the clock.
func NewGameModel(gameID string, store *storage.Store, cfg config.Config, logger *log.Logger, seed int64) (GameModel, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	machine, err := newMachine(gameID, store, cfg, logger, seed)
	if err != nil {
		return GameModel{}, err
	}

	return GameModel{
		gameID:  gameID,
		machine: machine,
		frame:   engine.NewFrame(machine.Grid()),
		store:   store,
		cfg:     cfg,
		logger:  logger,
		keys:    NewKeyMapper(),
		hold:    newHoldTracker(time.Duration(cfg.Input.ReleaseAfterMs) * time.Millisecond),
	}, nil
}

// Init starts the machine and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.machine.Reset()
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.recordPlay("quit")
		m.quitting = true
		return m, tea.Quit
	}

	// After the game ends the machine ignores keys; the platform handles
	// restart and back-to-menu itself.
	if !m.machine.Running() {
		switch {
		case action == engine.ActionRestart:
			return m.restart()
		case msg.String() == "esc" || msg.String() == "b":
			// A wrapping session model intercepts this quit and shows the
			// menu instead of exiting.
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != engine.ActionNone && m.hold.Observe(action, time.Now()) {
		m.machine.HandleKey(engine.Press(action))
	}

	return m, nil
}

// restart replaces the machine so a new run gets a fresh seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	machine, err := newMachine(m.gameID, m.store, m.cfg, m.logger, time.Now().UnixNano())
	if err != nil {
		// The factory was valid once; treat a failure as fatal.
		m.logger.Error("could not restart game", "game", m.gameID, "error", err)
		m.quitting = true
		return m, tea.Quit
	}

	m.machine = machine
	m.machine.Reset()
	m.frame = engine.NewFrame(machine.Grid())
	m.tick = 0
	m.recorded = false
	m.hold.Clear()
	return m, nil
}

// handleTick processes one simulation tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.hold.Expired(now) {
		m.machine.HandleKey(engine.Release(a))
	}

	m.machine.UpdateEntities(m.tick)
	m.machine.Manage(m.tick)
	m.tick++

	if m.machine.On() && !m.machine.Running() && !m.recorded {
		m.recordPlay(outcomeLabel(m.machine.Outcome()))
		m.hold.Clear()
	}

	return m, tickCmd(m.cfg.TickRate)
}

// recordPlay saves the finished run to the play history, once per run.
// Best-effort: the game flow never depends on it.
func (m *GameModel) recordPlay(outcome string) {
	if m.recorded || m.store == nil || m.machine.Score() == 0 {
		m.recorded = true
		return
	}
	if _, err := m.store.RecordPlay(m.gameID, m.machine.Score(), outcome); err != nil {
		m.logger.Warn("could not record play", "game", m.gameID, "error", err)
	}
	m.recorded = true
}

func outcomeLabel(o engine.Outcome) string {
	switch o {
	case engine.OutcomeVictory:
		return "victory"
	case engine.OutcomeDefeat:
		return "defeat"
	default:
		return "quit"
	}
}

// View renders the playfield with the score header and status footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.machine.Render(m.frame)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(" %s\n", m.machine.Title()))
	b.WriteString(fmt.Sprintf(" SCORE %d   BEST %d\n", m.machine.Score(), m.machine.Best()))
	if s, ok := storedPreview(m.machine); ok {
		b.WriteString(fmt.Sprintf(" NEXT %c\n", s))
	}
	b.WriteString(RenderPlayfield(m.frame))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n arrows: move  space: action  p: pause  q: quit\n")
	return b.String()
}

// storedPreview exposes the buffered piece of variants that have one.
func storedPreview(m *engine.Machine) (rune, bool) {
	type storer interface{ Stored() rune }

	if s, ok := m.Variant().(storer); ok {
		return s.Stored(), true
	}
	return 0, false
}

func (m GameModel) statusLine() string {
	switch {
	case m.machine.Paused():
		return " PAUSED - p to continue"
	case !m.machine.Running() && m.machine.Outcome() == engine.OutcomeVictory:
		return " YOU WIN - r: play again  esc: menu"
	case !m.machine.Running() && m.machine.Outcome() == engine.OutcomeDefeat:
		return " GAME OVER - r: play again  esc: menu"
	default:
		return ""
	}
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame runs a single game until the user quits or asks for the menu.
// Returns true when the user wants to go back to the menu.
func RunGame(gameID string, store *storage.Store, cfg config.Config, logger *log.Logger, seed int64) (bool, error) {
	model, err := NewGameModel(gameID, store, cfg, logger, seed)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if gm, ok := finalModel.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
