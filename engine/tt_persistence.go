package engine

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// cacheSnapshot is the on-disk form of the transposition cache. BoardSize
// pins the snapshot to one geometry: hashes from a differently sized
// zobrist table are meaningless and a mismatched file is rejected on load.
type cacheSnapshot struct {
	BoardSize int
	Entries   map[uint64]TTEntry
}

// SaveCache writes the transposition cache to path with gob encoding,
// creating parent directories as needed.
func (e *Engine) SaveCache(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache directory %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file %s: %w", path, err)
	}
	defer file.Close()

	snapshot := cacheSnapshot{
		BoardSize: e.opts.BoardSize,
		Entries:   e.tt.entries,
	}
	if err := gob.NewEncoder(file).Encode(&snapshot); err != nil {
		return fmt.Errorf("encode cache %s: %w", path, err)
	}
	return nil
}

// LoadCache restores a cache written by SaveCache, replacing the current
// entries. A missing file is not an error; the cache just starts cold.
func (e *Engine) LoadCache(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open cache file %s: %w", path, err)
	}
	defer file.Close()

	var snapshot cacheSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		return fmt.Errorf("decode cache %s: %w", path, err)
	}
	if snapshot.BoardSize != e.opts.BoardSize {
		return fmt.Errorf("cache %s was built for board size %d, engine uses %d", path, snapshot.BoardSize, e.opts.BoardSize)
	}
	if snapshot.Entries == nil {
		snapshot.Entries = make(map[uint64]TTEntry)
	}
	e.tt.entries = snapshot.Entries
	return nil
}
