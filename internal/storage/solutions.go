package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Entry is one stored solution on a level's high-score board.
type Entry struct {
	ID        int64
	Player    string
	Level     string
	Moves     int
	Attempts  int
	Solution  string // move letters, e.g. "LLURD"
	CreatedAt time.Time
}

// ToSolution converts the entry back to a core solution.
func (e Entry) ToSolution() (core.Solution, error) {
	seq, err := core.ParseMoves(e.Solution)
	if err != nil {
		return core.Solution{}, fmt.Errorf("storage: entry %d: %w", e.ID, err)
	}
	return core.Solution{
		PlayerName: e.Player,
		LevelName:  e.Level,
		Moves:      e.Moves,
		Attempts:   e.Attempts,
		Sequence:   seq,
	}, nil
}

// LevelBoard is the ranked board of a single level.
type LevelBoard struct {
	Level   string
	Entries []Entry
}

// Stats summarizes the whole store.
type Stats struct {
	Solutions int
	Players   int
	Levels    int
}

const entryColumns = "id, player, level, moves, attempts, solution, created_at"

// boardOrder ranks by fewest moves, then fewest attempts, then player name.
const boardOrder = "ORDER BY moves ASC, attempts ASC, player ASC, id ASC"

// SaveSolution stores a solved attempt and trims the level's board to
// EntriesPerLevel. Returns the new row ID.
func (s *Store) SaveSolution(ctx context.Context, sol core.Solution) (int64, error) {
	if sol.LevelName == "" {
		return 0, fmt.Errorf("storage: cannot save solution without level name")
	}

	seq := core.FormatMoves(sol.Sequence)
	const insert = "INSERT INTO solutions (player, level, moves, attempts, solution) VALUES (?, ?, ?, ?, ?)"

	var id int64
	if s.dialect == DialectPostgres {
		err := s.db.QueryRowContext(ctx, s.rebind(insert+" RETURNING id"),
			sol.PlayerName, sol.LevelName, sol.Moves, sol.Attempts, seq).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save solution: %w", err)
		}
	} else {
		result, err := s.db.ExecContext(ctx, insert,
			sol.PlayerName, sol.LevelName, sol.Moves, sol.Attempts, seq)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save solution: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("storage: cannot get last insert id: %w", err)
		}
	}

	if err := s.trim(ctx, sol.LevelName); err != nil {
		return id, err
	}
	return id, nil
}

func (s *Store) trim(ctx context.Context, level string) error {
	if s.EntriesPerLevel <= 0 {
		return nil
	}

	query := s.rebind(`DELETE FROM solutions WHERE level = ? AND id NOT IN (
		SELECT id FROM solutions WHERE level = ? ` + boardOrder + ` LIMIT ?
	)`)
	if _, err := s.db.ExecContext(ctx, query, level, level, s.EntriesPerLevel); err != nil {
		return fmt.Errorf("storage: cannot trim board %q: %w", level, err)
	}
	return nil
}

// Board returns the ranked entries for a level. A limit of zero or less
// returns the whole board.
func (s *Store) Board(ctx context.Context, level string, limit int) ([]Entry, error) {
	query := "SELECT " + entryColumns + " FROM solutions WHERE level = ? " + boardOrder
	args := []any{level}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// BestSolution returns the top entry of a level's board as a solution.
// The bool is false when nobody has solved the level yet.
func (s *Store) BestSolution(ctx context.Context, level string) (core.Solution, bool, error) {
	entries, err := s.Board(ctx, level, 1)
	if err != nil {
		return core.Solution{}, false, err
	}
	if len(entries) == 0 {
		return core.Solution{}, false, nil
	}

	sol, err := entries[0].ToSolution()
	if err != nil {
		return core.Solution{}, false, err
	}
	return sol, true, nil
}

// Levels lists the names of all levels with at least one stored solution.
func (s *Store) Levels(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT level FROM solutions ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []string
	for rows.Next() {
		var level string
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level: %w", err)
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// Boards returns every level's board, ordered by level name.
func (s *Store) Boards(ctx context.Context, limit int) ([]LevelBoard, error) {
	levels, err := s.Levels(ctx)
	if err != nil {
		return nil, err
	}

	boards := make([]LevelBoard, 0, len(levels))
	for _, level := range levels {
		entries, err := s.Board(ctx, level, limit)
		if err != nil {
			return nil, err
		}
		boards = append(boards, LevelBoard{Level: level, Entries: entries})
	}
	return boards, nil
}

// PlayerEntries returns all solutions recorded by a player, grouped by
// level and ranked within each level.
func (s *Store) PlayerEntries(ctx context.Context, player string) ([]Entry, error) {
	query := "SELECT " + entryColumns + " FROM solutions WHERE player = ? ORDER BY level ASC, moves ASC, attempts ASC, id ASC"
	rows, err := s.db.QueryContext(ctx, s.rebind(query), player)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// RemoveScoresFor deletes every solution recorded by player.
// Returns the number of removed entries.
func (s *Store) RemoveScoresFor(ctx context.Context, player string) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM solutions WHERE player = ?"), player)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot remove scores for %q: %w", player, err)
	}
	return result.RowsAffected()
}

// Clear removes all stored solutions.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM solutions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear solutions: %w", err)
	}
	return nil
}

// Stats counts solutions, distinct players and distinct levels.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT player), COUNT(DISTINCT level) FROM solutions",
	).Scan(&stats.Solutions, &stats.Players, &stats.Levels)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return &stats, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Level, &e.Moves, &e.Attempts, &e.Solution, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan entry: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating entries: %w", err)
	}
	return entries, nil
}

// parseTime handles both drivers: lib/pq yields time.Time, SQLite may
// hand back the CURRENT_TIMESTAMP text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, _ := time.Parse("2006-01-02 15:04:05", t)
		return parsed
	case []byte:
		parsed, _ := time.Parse("2006-01-02 15:04:05", string(t))
		return parsed
	}
	return time.Time{}
}
