package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pillow-tower/internal/core"
	"github.com/vovakirdan/pillow-tower/internal/registry"
	"github.com/vovakirdan/pillow-tower/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	allowBack  bool // Esc returns to the menu instead of pausing
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been saved
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     log.New(io.Discard),
	}
}

// WithLogger returns a copy of m that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// withMenu returns a copy of m whose back key leaves the game.
func (m Model) withMenu() Model {
	m.allowBack = true
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, keys.Back):
		if !m.allowBack {
			m.inputFrame.Set(core.ActionPause)
			return m, nil
		}
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		} else {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in place
// are restarted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("event", "game", m.game.ID(), "event", ev)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and play continues.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunResult{
		Mode:     m.game.ID(),
		Score:    m.gameState.Score,
		Feathers: m.gameState.Feathers,
		Misses:   m.gameState.Misses,
		Duration: m.gameState.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "mode", m.game.ID(), "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool { return m.backToMenu }

// State returns the last reported game state.
func (m Model) State() core.GameState { return m.gameState }

// Run plays a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
