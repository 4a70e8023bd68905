package storage

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Recorder saves solved attempts into a Store. Failures are logged and
// never reach the game loop.
type Recorder struct {
	store   *Store
	logger  *log.Logger
	timeout time.Duration
}

var _ core.Recorder = (*Recorder)(nil)

// NewRecorder wraps store. A nil logger uses the default charmbracelet logger.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger, timeout: 5 * time.Second}
}

// RecordSolution implements core.Recorder.
func (r *Recorder) RecordSolution(sol core.Solution) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	id, err := r.store.SaveSolution(ctx, sol)
	if err != nil {
		r.logger.Error("Could not save solution",
			"level", sol.LevelName, "player", sol.PlayerName, "moves", sol.Moves, "error", err)
		return
	}
	r.logger.Debug("Solution saved",
		"id", id, "level", sol.LevelName, "player", sol.PlayerName,
		"moves", sol.Moves, "attempts", sol.Attempts, "result", sol.Result)
}
