package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgemaster/internal/core"
	"github.com/vovakirdan/dodgemaster/internal/registry"
	"github.com/vovakirdan/dodgemaster/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	painter    *Painter
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Normalized()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		keys:    NewKeyMapper(DefaultHoldTicks),
		painter: defaultPainter,
		logger:  logger,
	}
}

// WithRenderer returns a copy of the model that styles output for r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.painter = NewPainter(r)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.Press(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer. The game keeps running since the
// field is scaled to whatever area the screen offers.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.keys.Frame())
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		m.keys.Release()
		m.recordRun()
	case !m.gameState.GameOver && wasOver:
		m.logger.Info("game restarted", "game", m.game.ID())
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run once per game over.
func (m *Model) recordRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	st := m.gameState
	m.logger.Info("game over",
		"game", m.game.ID(),
		"score", st.Score,
		"dodged", st.HitsAvoided,
		"reason", st.EndReason,
	)
	if m.store == nil || st.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:      m.game.ID(),
		Score:       st.Score,
		HitsAvoided: st.HitsAvoided,
		EndReason:   st.EndReason,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save score", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".dodgemaster", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
