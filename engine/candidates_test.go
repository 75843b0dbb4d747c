package engine

import "testing"

func TestCandidatesEmptyBoard(t *testing.T) {
	b := NewBoard(15)
	moves := candidateMoves(b)
	if len(moves) != 1 || !moves[0].Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("empty board must yield only the center, got %v", moves)
	}
}

func TestCandidatesAroundSingleStone(t *testing.T) {
	b := NewBoard(15)
	b.Set(7, 7, CellBlack)
	moves := candidateMoves(b)
	// 5x5 neighborhood minus the stone itself.
	if len(moves) != 24 {
		t.Fatalf("expected 24 candidates around one stone, got %d", len(moves))
	}
	for _, m := range moves {
		dx := m.X - 7
		if dx < 0 {
			dx = -dx
		}
		dy := m.Y - 7
		if dy < 0 {
			dy = -dy
		}
		if dx > candidateRadius || dy > candidateRadius {
			t.Fatalf("candidate (%d,%d) outside radius %d", m.X, m.Y, candidateRadius)
		}
		if !b.IsEmpty(m.X, m.Y) {
			t.Fatalf("candidate (%d,%d) is occupied", m.X, m.Y)
		}
	}
}

func TestCandidatesClippedAtCorner(t *testing.T) {
	b := NewBoard(15)
	b.Set(0, 0, CellBlack)
	moves := candidateMoves(b)
	// 3x3 in-bounds corner of the 5x5 neighborhood minus the stone.
	if len(moves) != 8 {
		t.Fatalf("expected 8 candidates at the corner, got %d: %v", len(moves), moves)
	}
}

func TestOrderMovesWinShortCircuits(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	for x := 3; x <= 6; x++ {
		b.Set(x, 7, CellBlack)
	}
	moves := e.orderMoves(b, PlayerBlack)
	if len(moves) != 1 {
		t.Fatalf("a winning candidate must collapse ordering to one move, got %v", moves)
	}
	b.Set(moves[0].X, moves[0].Y, CellBlack)
	if !e.CheckWin(b, moves[0].X, moves[0].Y, PlayerBlack) {
		t.Fatalf("short-circuit move (%d,%d) does not win", moves[0].X, moves[0].Y)
	}
}

func TestOrderMovesCapped(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	b.Set(4, 4, CellBlack)
	b.Set(7, 7, CellWhite)
	b.Set(10, 10, CellBlack)
	moves := e.orderMoves(b, PlayerWhite)
	if len(moves) == 0 || len(moves) > maxOrderedMoves {
		t.Fatalf("expected 1..%d ordered moves, got %d", maxOrderedMoves, len(moves))
	}
}
