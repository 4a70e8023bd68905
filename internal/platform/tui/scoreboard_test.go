package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func TestScoreboardShowsBoards(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, sol := range []sokocore.Solution{
		{PlayerName: "alice", LevelName: "Walk", Moves: 4, Attempts: 1, Sequence: []sokocore.Dir{sokocore.DirRight}},
		{PlayerName: "bob", LevelName: "Walk", Moves: 3, Attempts: 2, Sequence: []sokocore.Dir{sokocore.DirLeft, sokocore.DirRight}},
		{PlayerName: "carol", LevelName: "Archived", Moves: 9, Attempts: 1},
	} {
		if _, err := store.SaveSolution(ctx, sol); err != nil {
			t.Fatalf("SaveSolution() failed: %v", err)
		}
	}

	var m tea.Model = NewScoreboardModel(store, []string{"Push Once", "Walk"}, 100, 30)
	sb := m.(ScoreboardModel)
	if len(sb.levels) != 3 || sb.levels[2] != "Archived" {
		t.Errorf("levels = %v, expected stored-only level appended", sb.levels)
	}

	if view := m.View(); !strings.Contains(view, "Nobody has solved") {
		t.Errorf("first level should be empty:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Walk") {
		t.Errorf("title should name the level:\n%s", view)
	}
	if !strings.Contains(view, "bob") || !strings.Contains(view, "alice") {
		t.Errorf("board rows missing:\n%s", view)
	}
	if !strings.Contains(view, "Solution: LR") {
		t.Errorf("best solution of the highlighted row missing:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.(ScoreboardModel).levels[m.(ScoreboardModel).cursor]; got != "Archived" {
		t.Errorf("shift+tab wrapped to %q, expected Archived", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc should go back")
	}
}
