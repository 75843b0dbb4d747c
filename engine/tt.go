package engine

// TTEntry is valid for a query only when its Depth meets or exceeds the
// requested depth: a shallower result is never trusted for a deeper query.
type TTEntry struct {
	Value float64
	Depth int
}

type transpositionTable struct {
	entries map[uint64]TTEntry
	cap     int
}

func newTranspositionTable(cap int) *transpositionTable {
	return &transpositionTable{
		entries: make(map[uint64]TTEntry),
		cap:     cap,
	}
}

func (tt *transpositionTable) probe(key uint64, depth int) (float64, bool) {
	entry, ok := tt.entries[key]
	if !ok || entry.Depth < depth {
		return 0, false
	}
	return entry.Value, true
}

// store writes the value unless a deeper entry already exists. Past the
// cap the whole table is dropped: coarse eviction, not LRU.
func (tt *transpositionTable) store(key uint64, depth int, value float64) {
	if existing, ok := tt.entries[key]; ok && existing.Depth > depth {
		return
	}
	tt.entries[key] = TTEntry{Value: value, Depth: depth}
	if tt.cap > 0 && len(tt.entries) > tt.cap {
		tt.clear()
	}
}

func (tt *transpositionTable) size() int {
	return len(tt.entries)
}

func (tt *transpositionTable) clear() {
	tt.entries = make(map[uint64]TTEntry)
}
