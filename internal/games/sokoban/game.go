// Package sokoban provides the Sokoban game for the terminal platform.
// It wraps a core.Session, maps platform actions to moves, and renders the
// level into a core.Screen.
package sokoban

import (
	"context"
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// ID is the game identifier used for storage and the CLI.
const ID = "sokoban"

// HighScores looks up the stored best solution for a level.
type HighScores interface {
	BestSolution(ctx context.Context, levelName string) (core.Solution, bool, error)
}

// Game implements the Sokoban puzzle game over a set of levels.
type Game struct {
	set    []levels.Level
	index  int
	boards map[string]*core.Board

	session *core.Session
	facing  Facing
	message []string

	player   string
	recorder core.Recorder
	scores   HighScores
	glyphs   Glyphs

	// Screen dimensions
	screenW int
	screenH int
}

// Option configures a Game.
type Option func(*Game)

// WithPlayerName sets the name recorded with solutions.
func WithPlayerName(name string) Option {
	return func(g *Game) { g.player = name }
}

// WithRecorder sets where solved attempts are reported.
func WithRecorder(r core.Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithHighScores seeds each level's board from stored results.
func WithHighScores(s HighScores) Option {
	return func(g *Game) { g.scores = s }
}

// WithGlyphs overrides the characters used to draw the level.
func WithGlyphs(gl Glyphs) Option {
	return func(g *Game) { g.glyphs = gl }
}

// WithStartLevel selects the first level to play (0-indexed).
func WithStartLevel(i int) Option {
	return func(g *Game) { g.index = i }
}

// New creates a game over the given levels.
func New(set []levels.Level, opts ...Option) (*Game, error) {
	if len(set) == 0 {
		return nil, errors.New("sokoban: no levels to play")
	}

	g := &Game{
		set:      set,
		boards:   make(map[string]*core.Board),
		recorder: core.NopRecorder{},
		glyphs:   DefaultGlyphs(),
		screenW:  80,
		screenH:  24,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.index < 0 || g.index >= len(set) {
		return nil, fmt.Errorf("sokoban: start level %d out of range 1-%d", g.index+1, len(set))
	}
	if err := g.load(g.index); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Reset applies the runtime config and restarts the current attempt if
// it has already been played.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if g.session.Board().Moves() > 0 || g.session.Solved() {
		g.restart()
	}
}

// Resize updates the screen dimensions without touching the attempt.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step processes one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	changed := false

	switch {
	case in.Has(platformcore.ActionRestart):
		g.restart()
		changed = true
	case g.session.Solved() && in.Has(platformcore.ActionConfirm):
		changed = g.NextLevel() == nil
	default:
		if d, ok := directionOf(in); ok {
			changed = g.move(d)
		}
	}

	return platformcore.StepResult{State: g.State(), Moved: changed}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	b := g.session.Board()
	return platformcore.GameState{
		Moves:    b.Moves(),
		Attempts: b.Attempts(),
		Solved:   g.session.Solved(),
	}
}

// Session returns the session of the current level.
func (g *Game) Session() *core.Session { return g.session }

// Level returns the current level definition.
func (g *Game) Level() levels.Level { return g.set[g.index] }

// LevelIndex returns the index of the current level.
func (g *Game) LevelIndex() int { return g.index }

// LevelCount returns the number of levels in the set.
func (g *Game) LevelCount() int { return len(g.set) }

// Facing returns the player orientation to draw.
func (g *Game) Facing() Facing { return g.facing }

// Message returns the lines of the current solve message, if any.
func (g *Game) Message() []string { return g.message }

// SelectLevel switches to level i (0-indexed).
func (g *Game) SelectLevel(i int) error {
	if i < 0 || i >= len(g.set) {
		return fmt.Errorf("sokoban: level %d out of range 1-%d", i+1, len(g.set))
	}
	return g.load(i)
}

// NextLevel advances to the next level, wrapping after the last one.
func (g *Game) NextLevel() error {
	return g.load((g.index + 1) % len(g.set))
}

func (g *Game) load(i int) error {
	lvl := g.set[i]
	grid := lvl.NewInstance()

	board, ok := g.boards[grid.Name()]
	if !ok {
		board = core.NewBoard(grid.Name())
		g.seed(board)
		g.boards[grid.Name()] = board
	}

	session, err := core.NewSession(grid,
		core.WithBoard(board),
		core.WithPlayerName(g.player),
		core.WithRecorder(g.recorder),
	)
	if err != nil {
		return fmt.Errorf("sokoban: level %s: %w", lvl.ID, err)
	}
	if board.State() != core.AttemptNotStarted {
		session.StartNewAttempt()
	}

	g.index = i
	g.session = session
	g.facing = FacingDown
	g.message = nil
	return nil
}

// seed restores the stored best for a fresh board. Lookup failures leave
// the board empty.
func (g *Game) seed(b *core.Board) {
	if g.scores == nil {
		return
	}
	best, ok, err := g.scores.BestSolution(context.Background(), b.LevelName())
	if err != nil || !ok {
		return
	}
	b.SeedHighScore(best.Moves, best.Sequence)
}

func (g *Game) restart() {
	if g.session.Board().State() != core.AttemptNotStarted {
		g.session.StartNewAttempt()
	}
	g.facing = FacingDown
	g.message = nil
}

func (g *Game) move(d core.Dir) bool {
	if g.session.Solved() {
		return false
	}

	prev := g.facing
	g.facing = FacingFor(d)
	res := g.session.Move(d)

	if g.session.Solved() {
		g.facing = FacingSolved
		result, _ := g.session.Result()
		b := g.session.Board()
		best, _ := b.HighScore()
		g.message = SolveMessage(g.session.Level().Name(), b.Moves(), result, best)
	}
	return res.Accepted() || g.facing != prev
}

// directionOf maps the first directional action in the frame to a Dir.
func directionOf(in platformcore.InputFrame) (core.Dir, bool) {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.DirUp, true
	case in.Has(platformcore.ActionDown):
		return core.DirDown, true
	case in.Has(platformcore.ActionLeft):
		return core.DirLeft, true
	case in.Has(platformcore.ActionRight):
		return core.DirRight, true
	default:
		return 0, false
	}
}
