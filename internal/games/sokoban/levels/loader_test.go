package levels

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	expected := []string{"chaos", "corridor", "minicosmos"}
	if len(lvls) != len(expected) {
		t.Fatalf("loaded %d levels, expected %d", len(lvls), len(expected))
	}
	for i, id := range expected {
		if lvls[i].ID != id {
			t.Errorf("level %d ID = %q, expected %q", i, lvls[i].ID, id)
		}
	}
}

func TestLoaderCheckReportsBrokenFiles(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	lvls, problems, err := loader.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(lvls) != 3 {
		t.Errorf("loaded %d levels, expected 3", len(lvls))
	}
	if len(problems) != 2 {
		t.Fatalf("problems = %v, expected 2", problems)
	}

	var mismatch bool
	for _, p := range problems {
		if errors.Is(p, core.ErrTargetBoxMismatch) {
			mismatch = true
			if filepath.Base(p.Path) != "unbalanced.yaml" {
				t.Errorf("mismatch reported for %s, expected unbalanced.yaml", p.Path)
			}
		}
	}
	if !mismatch {
		t.Errorf("no target/box mismatch among %v", problems)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID(context.Background(), "minicosmos")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Mini Cosmos" {
		t.Errorf("Name = %q, expected %q", lvl.Name, "Mini Cosmos")
	}
	if lvl.Width() != 8 || lvl.Height() != 8 {
		t.Errorf("size = %dx%d, expected 8x8", lvl.Width(), lvl.Height())
	}
	if lvl.Boxes() != 1 {
		t.Errorf("Boxes() = %d, expected 1", lvl.Boxes())
	}

	if _, err := loader.LoadByID(context.Background(), "missing"); err == nil {
		t.Error("LoadByID(missing) succeeded, expected error")
	}
}

func TestLevelInstancesAreIndependent(t *testing.T) {
	loader := NewLoader(getTestdataPath())
	lvl, err := loader.LoadByID(context.Background(), "corridor")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	a := lvl.NewInstance()
	b := lvl.NewInstance()
	if a.Move(core.DirRight) != core.MovePushed {
		t.Fatal("expected push in first instance")
	}
	if b.Player() != core.C(1, 1) {
		t.Errorf("second instance Player() = %v, expected (1, 1)", b.Player())
	}
	if !a.Validated() || !b.Validated() {
		t.Error("instances are not validated")
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	if _, err := loader.LoadFile("missing.sok"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, expected not exist", err)
	}
	if _, err := loader.LoadFile("broken.sok"); err == nil {
		t.Error("LoadFile(broken) succeeded, expected error")
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls, problems, err := Builtin().Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("built-in level problems: %v", problems)
	}
	if len(lvls) < 4 {
		t.Fatalf("loaded %d built-in levels, expected at least 4", len(lvls))
	}
	if lvls[0].ID != "01-first-steps" {
		t.Errorf("first built-in ID = %q, expected %q", lvls[0].ID, "01-first-steps")
	}
	if lvls[0].Source != "builtin:01-first-steps.yaml" {
		t.Errorf("Source = %q", lvls[0].Source)
	}
}

func TestDuplicateIDsAndMerge(t *testing.T) {
	corridor := []byte("id: corridor\nname: Other Corridor\nrows:\n  - \"#####\"\n  - \"#@$.#\"\n  - \"#####\"\n")
	fsys := fstest.MapFS{
		"a.yaml":     {Data: corridor},
		"sub/b.yaml": {Data: corridor},
		"tiny.sok":   {Data: []byte("####\n#@ #\n####\n")},
	}

	lvls, problems, err := NewFSLoader(fsys, "mem").Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(lvls) != 2 || len(problems) != 1 {
		t.Fatalf("levels=%d problems=%v, expected 2 levels and 1 duplicate", len(lvls), problems)
	}

	merged, err := Merge(context.Background(), NewFSLoader(fsys, "mem"), NewLoader(getTestdataPath()))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	ids := make(map[string]string)
	for _, lvl := range merged {
		ids[lvl.ID] = lvl.Name
	}
	if len(merged) != 4 {
		t.Errorf("merged %d levels, expected 4", len(merged))
	}
	if ids["corridor"] != "Other Corridor" {
		t.Errorf("corridor name = %q, expected the first loader to win", ids["corridor"])
	}
	if ids["tiny"] != "tiny" {
		t.Errorf("tiny name = %q, expected ID as name", ids["tiny"])
	}
}

func TestLoadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLoader(getTestdataPath()).LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadAll error = %v, expected %v", err, context.Canceled)
	}
}
