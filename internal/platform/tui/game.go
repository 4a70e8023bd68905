package tui

import (
	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game is what the Bubble Tea model drives: one Step per queued input frame
// and a Render into the shared screen buffer.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}
