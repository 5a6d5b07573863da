package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// GameFactory builds a fresh game for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) (core.Game, error)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// Each SSH connection gets its own; the local menu command uses one too.
type SessionModel struct {
	factory GameFactory
	store   *storage.Store
	config  core.RuntimeConfig
	logger  *log.Logger
	user    string

	view     sessionView
	menu     MenuModel
	game     *Model
	scores   ScoreboardModel
	err      error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(factory GameFactory, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, user string) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		factory: factory,
		store:   store,
		config:  cfg,
		logger:  logger,
		user:    user,
		menu:    NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.view = viewScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().Preset)
	}

	return m, cmd
}

func (m SessionModel) startGame(preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := m.factory(preset)
	if err != nil {
		m.logger.Error("could not create game", "user", m.user, "preset", preset, "err", err)
		m.err = fmt.Errorf("cannot start %s game: %w", preset, err)
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}

	m.logger.Info("game started", "user", m.user, "preset", preset)
	gm := NewModel(game, m.store, m.config, string(preset), m.logger)
	gm.embedded = true
	m.game = &gm
	m.view = viewGame
	m.err = nil
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.logger.Info("game left", "user", m.user, "rounds_saved", m.game.Saved())
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.view = viewMenu
	m.game = nil
	m.menu = NewMenuModel(m.store, m.config)
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}

	if m.err != nil {
		return m.menu.View() + "\n" + centerText(m.err.Error(), m.config.ScreenW)
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(factory GameFactory, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewSessionModel(factory, store, cfg, logger, "local"), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
