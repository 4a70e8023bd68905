package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// MenuModel is the level picker.
type MenuModel struct {
	set          []levels.Level
	best         map[string]int
	cursor       int
	scrollOffset int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	theme        Theme

	selected       int
	chosen         bool
	quitting       bool
	openScoreboard bool
}

// NewMenuModel creates a level picker with the cursor on start.
// scores may be nil; otherwise each level shows its stored best.
func NewMenuModel(set []levels.Level, scores sokoban.HighScores, start int, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		set:       set,
		best:      make(map[string]int),
		cursor:    core.Clamp(start, 0, core.Max(len(set)-1, 0)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     DefaultTheme(),
	}

	if scores != nil {
		ctx := context.Background()
		for _, lvl := range set {
			sol, ok, err := scores.BestSolution(ctx, lvl.Name)
			if err == nil && ok {
				m.best[lvl.Name] = sol.Moves
			}
		}
	}

	m.updateScroll()
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.set)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		if len(m.set) > 0 {
			m.selected = m.cursor
			m.chosen = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) visibleItems() int {
	return core.Max(m.config.ScreenH-10, 3)
}

// updateScroll keeps the cursor inside the visible window.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level list.
func (m MenuModel) View() string {
	if m.quitting || m.chosen || m.openScoreboard {
		return ""
	}

	width := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("S O K O B A N"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Description.Render("Select a level:"), width))
	b.WriteString("\n\n")

	end := core.Min(m.scrollOffset+m.visibleItems(), len(m.set))
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Description.Render("... more above ..."), width))
		b.WriteString("\n")
	}
	if end < len(m.set) {
		b.WriteString(centerText(m.theme.Description.Render("... more below ..."), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderItem(i int) string {
	lvl := m.set[i]

	cursor := "  "
	style := m.theme.ItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.ItemActive
	}

	line := fmt.Sprintf("%s%2d. %-24s %3dx%-3d", cursor, i+1, lvl.Name, lvl.Width(), lvl.Height())
	if best, ok := m.best[lvl.Name]; ok {
		return style.Render(line) + m.theme.ItemSolved.Render(fmt.Sprintf("  best: %d", best))
	}
	return style.Render(line)
}

// Selected returns the chosen level index.
func (m MenuModel) Selected() (int, bool) {
	return m.selected, m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(set []levels.Level, scores sokoban.HighScores, start int, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(set, scores, start, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	default:
		level, chosen := m.Selected()
		result.Level = level
		result.Quit = !chosen
	}
	return result, nil
}
