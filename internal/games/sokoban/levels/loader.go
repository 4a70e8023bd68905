// Package levels loads Sokoban levels from level files and from the built-in
// set. This package depends on core but core does not depend on levels.
package levels

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
	"golang.org/x/sync/errgroup"
)

//go:embed builtin/*
var builtinFS embed.FS

// Level is a validated level definition. Each play gets its own copy of the
// grid through NewInstance.
type Level struct {
	ID       string
	Name     string
	Author   string
	Metadata map[string]string
	Source   string

	grid *core.Level
}

// Width returns the grid width.
func (l *Level) Width() int { return l.grid.Width() }

// Height returns the grid height.
func (l *Level) Height() int { return l.grid.Height() }

// Boxes returns the number of boxes.
func (l *Level) Boxes() int { return l.grid.BoxCount() }

// NewInstance returns a fresh, validated copy of the level grid.
func (l *Level) NewInstance() *core.Level {
	return l.grid.Clone()
}

// FileError describes a level file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys   fs.FS
	prefix string // prepended to paths in Source and errors

	// Concurrency bounds parallel decoding. Zero means GOMAXPROCS.
	Concurrency int
}

// NewLoader creates a loader for the level files below root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), prefix: root}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, prefix: name}
}

// Builtin returns a loader for the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded levels: %v", err))
	}
	return NewFSLoader(sub, "builtin:")
}

// LoadAll loads every level file, skipping files that fail to decode or
// validate. Levels are sorted by ID.
func (l *Loader) LoadAll(ctx context.Context) ([]Level, error) {
	levels, _, err := l.scan(ctx)
	return levels, err
}

// Check loads every level file and reports the files that failed.
func (l *Loader) Check(ctx context.Context) ([]Level, []FileError, error) {
	return l.scan(ctx)
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", l.source(name), err)
	}
	lvl, err := l.decode(name, data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", l.source(name), err)
	}
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(ctx context.Context, id string) (Level, error) {
	levels, err := l.LoadAll(ctx)
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs(ctx context.Context) ([]string, error) {
	levels, err := l.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) scan(ctx context.Context) ([]Level, []FileError, error) {
	var files []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.prefix, err)
	}

	results := make([]Level, len(files))
	failures := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	limit := l.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lvl, err := l.LoadFile(name)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = lvl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		levels   []Level
		problems []FileError
		seen     = make(map[string]string)
	)
	for i, name := range files {
		if failures[i] != nil {
			problems = append(problems, FileError{Path: l.source(name), Err: failures[i]})
			continue
		}
		lvl := results[i]
		if prev, dup := seen[lvl.ID]; dup {
			problems = append(problems, FileError{
				Path: lvl.Source,
				Err:  fmt.Errorf("duplicate level id %q, already defined in %s", lvl.ID, prev),
			})
			continue
		}
		seen[lvl.ID] = lvl.Source
		levels = append(levels, lvl)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, problems, nil
}

func (l *Loader) decode(name string, data []byte) (Level, error) {
	parsed, err := formats.Parse(data, path.Ext(name))
	if err != nil {
		return Level{}, err
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}

	grid, err := parsed.Build()
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Author:   parsed.Author,
		Metadata: parsed.Metadata,
		Source:   l.source(name),
		grid:     grid,
	}, nil
}

func (l *Loader) source(name string) string {
	if strings.HasSuffix(l.prefix, ":") {
		return l.prefix + name
	}
	return path.Join(l.prefix, name)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Merge loads levels from several loaders. When two loaders provide the same
// ID, the earlier loader wins. The result is sorted by ID.
func Merge(ctx context.Context, loaders ...*Loader) ([]Level, error) {
	var merged []Level
	seen := make(map[string]bool)
	for _, ld := range loaders {
		levels, err := ld.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, lvl := range levels {
			if seen[lvl.ID] {
				continue
			}
			seen[lvl.ID] = true
			merged = append(merged, lvl)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return merged, nil
}
