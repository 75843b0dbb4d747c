package engine

import (
	"math"
	"testing"
)

func TestTTDepthGate(t *testing.T) {
	tt := newTranspositionTable(100)
	tt.store(42, 3, 1.5)

	if _, ok := tt.probe(42, 5); ok {
		t.Fatalf("a depth-3 entry must not answer a depth-5 probe")
	}
	if value, ok := tt.probe(42, 3); !ok || value != 1.5 {
		t.Fatalf("depth-3 probe: got (%v,%v) want (1.5,true)", value, ok)
	}
	if value, ok := tt.probe(42, 1); !ok || value != 1.5 {
		t.Fatalf("a deeper entry must answer a shallower probe, got (%v,%v)", value, ok)
	}
	if _, ok := tt.probe(99, 0); ok {
		t.Fatalf("unknown key must miss")
	}
}

func TestTTDeeperEntryWins(t *testing.T) {
	tt := newTranspositionTable(100)
	tt.store(42, 5, 2.0)
	tt.store(42, 2, -1.0)
	if value, ok := tt.probe(42, 5); !ok || value != 2.0 {
		t.Fatalf("shallower store must not evict a deeper entry, got (%v,%v)", value, ok)
	}

	tt.store(42, 7, 3.0)
	if value, ok := tt.probe(42, 7); !ok || value != 3.0 {
		t.Fatalf("deeper store must replace, got (%v,%v)", value, ok)
	}
}

func TestTTCapClearsEverything(t *testing.T) {
	tt := newTranspositionTable(4)
	for key := uint64(0); key < 4; key++ {
		tt.store(key, 1, float64(key))
	}
	if tt.size() != 4 {
		t.Fatalf("expected 4 entries at cap, got %d", tt.size())
	}
	tt.store(4, 1, 4.0)
	if tt.size() != 0 {
		t.Fatalf("crossing the cap must drop the whole table, got %d entries", tt.size())
	}
}

func TestCachedNodeSkipsLeafEvaluation(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	b.Set(7, 7, CellBlack)
	b.Set(8, 8, CellWhite)
	hash := e.zobrist.hashBoard(b)
	ctx := &searchContext{player: PlayerBlack}

	first := e.minimax(b, ctx, 2, PlayerBlack, hash, false, math.Inf(-1), math.Inf(1))
	evalsAfterFirst := e.stats.EvalCalls

	same := e.minimax(b, ctx, 2, PlayerBlack, hash, false, math.Inf(-1), math.Inf(1))
	if same != first {
		t.Fatalf("cached value %v differs from computed %v", same, first)
	}
	if e.stats.EvalCalls != evalsAfterFirst {
		t.Fatalf("repeat query re-evaluated: %d -> %d calls", evalsAfterFirst, e.stats.EvalCalls)
	}

	shallower := e.minimax(b, ctx, 1, PlayerBlack, hash, false, math.Inf(-1), math.Inf(1))
	if shallower != first {
		t.Fatalf("shallower query must reuse the deeper entry, got %v want %v", shallower, first)
	}
	if e.stats.EvalCalls != evalsAfterFirst {
		t.Fatalf("shallower query re-evaluated: %d -> %d calls", evalsAfterFirst, e.stats.EvalCalls)
	}
}

func TestEngineCacheAccessors(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	b.Set(3, 3, CellBlack)
	b.Set(11, 11, CellWhite)
	if _, ok, err := e.Decide(b, PlayerBlack); err != nil || !ok {
		t.Fatalf("Decide: ok=%v err=%v", ok, err)
	}
	if e.CacheSize() == 0 {
		t.Fatalf("expected cache entries after a search decision")
	}
	if e.Stats().TTStores == 0 {
		t.Fatalf("expected TT stores during search")
	}
	e.ClearCache()
	if e.CacheSize() != 0 {
		t.Fatalf("ClearCache left %d entries", e.CacheSize())
	}
}
