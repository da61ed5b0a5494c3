package pathfilter

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFilterPaths(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		touch(t, filepath.Join(dir, "src", "main.rs")),
		touch(t, filepath.Join(dir, "README.md")),
		touch(t, filepath.Join(dir, "src", "lib.rs")),
		touch(t, filepath.Join(dir, "target", "out.bin")),
	}

	f := NewFilter(Config{Include: []string{"*.rs"}})

	kept, err := f.FilterPaths(context.Background(), paths, 4)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{paths[0], paths[2]}
	if len(kept) != len(want) {
		t.Fatalf("kept %d paths, want %d: %v", len(kept), len(want), kept)
	}

	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("kept[%d] = %q, want %q (input order must be preserved)", i, kept[i], want[i])
		}
	}
}

func TestFilterPathsSingleWorkerFloor(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "a.txt"))

	f := NewFilter(Config{})

	kept, err := f.FilterPaths(context.Background(), []string{path}, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(kept) != 1 || kept[0] != path {
		t.Errorf("kept = %v, want [%q]", kept, path)
	}
}

func TestFilterPathsCanceledContext(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "a.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFilter(Config{})

	if _, err := f.FilterPaths(ctx, []string{path}, 2); err == nil {
		t.Error("expected an error from a canceled context")
	}
}

func TestFilterPathsEmptyInput(t *testing.T) {
	f := NewFilter(Config{})

	kept, err := f.FilterPaths(context.Background(), nil, 8)
	if err != nil {
		t.Fatal(err)
	}

	if len(kept) != 0 {
		t.Errorf("kept = %v, want empty", kept)
	}
}
