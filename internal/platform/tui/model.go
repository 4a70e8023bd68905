package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// resizer is implemented by games that can follow the terminal size
// without restarting the current attempt.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model for playing a game. Key presses are
// queued and replayed one frame per tick, so fast typing keeps its order.
type GameModel struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	queue      []core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game Game, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if r, ok := m.game.(resizer); ok {
			r.Resize(msg.Width, msg.Height)
		} else {
			m.game.Reset(m.config)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame, isQuit, ok := m.keyMapper.MapKeyToFrame(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if !ok {
		return m, nil
	}

	if frame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, tea.Quit
	}

	m.queue = append(m.queue, frame)
	return m, nil
}

// handleTick steps the game with the oldest queued frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if len(m.queue) > 0 {
		frame := m.queue[0]
		m.queue = m.queue[1:]

		result := m.game.Step(frame)
		m.gameState = result.State
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".sokoban", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Config returns the runtime config, updated by resizes.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game in the local terminal until the player quits or
// goes back. Returns whether the player asked for the menu.
func Run(game Game, cfg core.RuntimeConfig) (backToMenu bool, updated core.RuntimeConfig, err error) {
	p := tea.NewProgram(NewGameModel(game, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, cfg, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, cfg, nil
	}
	return m.BackToMenu(), m.Config(), nil
}
