package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	variant    string
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time

	// embedded models hand control back to a session instead of quitting.
	embedded   bool
	quitting   bool
	backToMenu bool
	saved      int
}

// NewModel creates a new Bubble Tea model for the given game.
// Rounds are recorded under variant; store may be nil.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, variant string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		variant:    variant,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       newHoldTracker(HoldWindow),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.embedded && m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	case action == core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	m.hold.Press(action, m.now())
	return m, nil
}

// handleResize only resizes the buffer: the world has its own coordinates
// and the round carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.hold.Apply(&m.inputFrame, m.now())
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RoundEnded != nil {
		m.hold.Reset()
		if m.saveRound(*result.RoundEnded) {
			m.saved++
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveRound persists a finished round. Empty rounds are not recorded.
func (m Model) saveRound(sum core.RoundSummary) bool {
	if m.store == nil || sum.Score <= 0 {
		return false
	}
	if _, err := m.store.SaveRound(storage.RecordFromSummary(m.variant, sum)); err != nil {
		m.logger.Error("could not save round", "round", sum.RoundID, "err", err)
		return false
	}
	m.logger.Debug("round saved", "round", sum.RoundID, "score", sum.Score, "variant", m.variant)
	return true
}

func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".skyfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to leave the game from the pause screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Saved returns how many rounds this model has persisted.
func (m Model) Saved() int {
	return m.saved
}

// Run plays game in the terminal until the player quits.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, variant string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, variant, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
