// Package storage persists solved Sokoban attempts and serves the per-level
// high-score boards. Local files use the pure-Go modernc.org/sqlite driver;
// postgres:// DSNs go through lib/pq so several servers can share one board.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Dialect identifies the SQL flavor behind a Store.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Store manages the database connection for score persistence.
type Store struct {
	db      *sql.DB
	dialect Dialect

	// EntriesPerLevel caps how many solutions are kept per level.
	// Zero keeps everything.
	EntriesPerLevel int
}

// DialectFor picks the driver for a DSN.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Open connects to the score database named by dsn and runs migrations.
// A postgres:// or postgresql:// DSN selects PostgreSQL, anything else is
// treated as a SQLite file path (~ is expanded, parent directories created).
func Open(dsn string) (*Store, error) {
	dialect := DialectFor(dsn)

	source := dsn
	if dialect == DialectSQLite {
		path, err := expandHome(dsn)
		if err != nil {
			return nil, err
		}

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
		source = path
	}

	db, err := sql.Open(string(dialect), source)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if dialect == DialectSQLite {
		// One writer at a time; concurrent SSH sessions queue on the pool.
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db, dialect: dialect}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	id := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	created := "created_at DATETIME DEFAULT CURRENT_TIMESTAMP"
	if s.dialect == DialectPostgres {
		id = "id SERIAL PRIMARY KEY"
		created = "created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS solutions (
			` + id + `,
			player TEXT NOT NULL,
			level TEXT NOT NULL,
			moves INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			solution TEXT NOT NULL,
			` + created + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_solutions_level ON solutions(level)`,
		`CREATE INDEX IF NOT EXISTS idx_solutions_board ON solutions(level, moves, attempts, player)`,
		`CREATE INDEX IF NOT EXISTS idx_solutions_player ON solutions(player)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Dialect reports which driver the store uses.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
