package main

import (
	"testing"

	"github.com/dkim-bro/omok2025/engine"
)

func testSessionManager(t *testing.T) *sessionManager {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.MaxSearchDepth = 2
	opts.TimeLimitMs = 200
	return newSessionManager(opts)
}

func TestSessionPlayExchange(t *testing.T) {
	manager := testSessionManager(t)
	session, err := manager.create(engine.PlayerBlack)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if manager.count() != 1 {
		t.Fatalf("expected 1 active session, got %d", manager.count())
	}

	finished, err := session.applyHuman(engine.Move{X: 7, Y: 7})
	if err != nil || finished {
		t.Fatalf("applyHuman: finished=%v err=%v", finished, err)
	}
	m, finished, err := session.playEngine()
	if err != nil {
		t.Fatalf("playEngine: %v", err)
	}
	if finished {
		t.Fatalf("game cannot finish after two stones")
	}
	if session.board.At(m.X, m.Y) != engine.CellWhite {
		t.Fatalf("engine stone missing at (%d,%d)", m.X, m.Y)
	}
	if state := session.state(); state.Moves != 2 {
		t.Fatalf("expected 2 moves, got %d", state.Moves)
	}

	manager.remove(session.id)
	if manager.count() != 0 {
		t.Fatalf("expected no sessions after remove, got %d", manager.count())
	}
}

func TestSessionRejectsIllegalMoves(t *testing.T) {
	manager := testSessionManager(t)
	session, err := manager.create(engine.PlayerBlack)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := session.applyHuman(engine.Move{X: -1, Y: 3}); err == nil {
		t.Fatalf("out-of-bounds move must fail")
	}
	if _, err := session.applyHuman(engine.Move{X: 7, Y: 7}); err != nil {
		t.Fatalf("legal move failed: %v", err)
	}
	if _, err := session.applyHuman(engine.Move{X: 7, Y: 7}); err == nil {
		t.Fatalf("occupied cell must fail")
	}
}

func TestSessionHumanWinEndsGame(t *testing.T) {
	manager := testSessionManager(t)
	session, err := manager.create(engine.PlayerBlack)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Preload four black stones and complete the five by hand.
	for x := 3; x <= 6; x++ {
		session.board.Set(x, 7, engine.CellBlack)
	}
	finished, err := session.applyHuman(engine.Move{X: 7, Y: 7})
	if err != nil {
		t.Fatalf("applyHuman: %v", err)
	}
	if !finished {
		t.Fatalf("completing five must end the game")
	}
	state := session.state()
	if !state.Finished || state.Winner != 1 {
		t.Fatalf("expected black win, got %+v", state)
	}
	if _, err := session.applyHuman(engine.Move{X: 0, Y: 0}); err == nil {
		t.Fatalf("moves after the game ends must fail")
	}

	session.reset()
	if state := session.state(); state.Finished || state.Moves != 0 {
		t.Fatalf("reset must clear the game, got %+v", state)
	}
}
