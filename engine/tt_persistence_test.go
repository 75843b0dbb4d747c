package engine

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "engine.gob")

	a := newTestEngine(t)
	a.tt.store(1, 3, 42.0)
	a.tt.store(2, 1, -7.0)
	if err := a.SaveCache(path); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	b := newTestEngine(t)
	if err := b.LoadCache(path); err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if b.CacheSize() != 2 {
		t.Fatalf("expected 2 restored entries, got %d", b.CacheSize())
	}
	if value, ok := b.tt.probe(1, 3); !ok || value != 42.0 {
		t.Fatalf("restored entry mismatch: got (%v,%v)", value, ok)
	}
}

func TestLoadCacheMissingFileIsCold(t *testing.T) {
	e := newTestEngine(t)
	if err := e.LoadCache(filepath.Join(t.TempDir(), "absent.gob")); err != nil {
		t.Fatalf("missing cache file must not error: %v", err)
	}
	if e.CacheSize() != 0 {
		t.Fatalf("expected a cold cache, got %d entries", e.CacheSize())
	}
}

func TestLoadCacheRejectsSizeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.gob")

	opts := testOptions()
	opts.BoardSize = 19
	big, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	big.tt.store(1, 1, 1.0)
	if err := big.SaveCache(path); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	small := newTestEngine(t)
	if err := small.LoadCache(path); err == nil {
		t.Fatalf("expected a board-size mismatch error")
	}
	if small.CacheSize() != 0 {
		t.Fatalf("rejected snapshot must not replace the cache")
	}
}
