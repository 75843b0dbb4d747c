package main

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dkim-bro/omok2025/engine"
)

// playSession is one interactive game: a human side, an engine side, and
// the authoritative board held by the server.
type playSession struct {
	mu       sync.Mutex
	id       string
	board    *engine.Board
	human    engine.PlayerColor
	eng      *engine.Engine
	finished bool
	winner   int
	moves    int
}

type sessionManager struct {
	mu       sync.Mutex
	sessions map[string]*playSession
	opts     engine.Options
}

func newSessionManager(opts engine.Options) *sessionManager {
	return &sessionManager{
		sessions: make(map[string]*playSession),
		opts:     opts,
	}
}

// create builds a session with its own engine instance so that games never
// contend on one transposition cache lock.
func (m *sessionManager) create(human engine.PlayerColor) (*playSession, error) {
	eng, err := engine.New(m.opts)
	if err != nil {
		return nil, err
	}
	session := &playSession{
		id:    uuid.NewString(),
		board: engine.NewBoard(m.opts.BoardSize),
		human: human,
		eng:   eng,
	}
	m.mu.Lock()
	m.sessions[session.id] = session
	m.mu.Unlock()
	return session, nil
}

func (m *sessionManager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *sessionManager) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// applyHuman validates and plays the human move. It reports whether the
// move ended the game.
func (s *playSession) applyHuman(m engine.Move) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return false, fmt.Errorf("game is over")
	}
	if !m.IsValid(s.board.Size()) {
		return false, fmt.Errorf("move (%d,%d) out of bounds", m.X, m.Y)
	}
	if !s.board.IsEmpty(m.X, m.Y) {
		return false, fmt.Errorf("cell (%d,%d) is occupied", m.X, m.Y)
	}
	s.board.Set(m.X, m.Y, engine.CellFromPlayer(s.human))
	s.moves++
	if s.eng.CheckWin(s.board, m.X, m.Y, s.human) {
		s.finished = true
		s.winner = wirePlayer(s.human)
		return true, nil
	}
	if s.board.CountEmpty() == 0 {
		s.finished = true
		return true, nil
	}
	return false, nil
}

// playEngine asks the engine for its reply and commits it.
func (s *playSession) playEngine() (engine.Move, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return engine.Move{}, true, nil
	}
	side := engineSide(s.human)
	m, ok, err := s.eng.Decide(s.board, side)
	if err != nil {
		return engine.Move{}, false, err
	}
	if !ok {
		s.finished = true
		return engine.Move{}, true, nil
	}
	s.board.Set(m.X, m.Y, engine.CellFromPlayer(side))
	s.moves++
	if s.eng.CheckWin(s.board, m.X, m.Y, side) {
		s.finished = true
		s.winner = wirePlayer(side)
	} else if s.board.CountEmpty() == 0 {
		s.finished = true
	}
	return m, s.finished, nil
}

func (s *playSession) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = engine.NewBoard(s.board.Size())
	s.finished = false
	s.winner = 0
	s.moves = 0
}

func (s *playSession) state() sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sessionState{
		SessionID: s.id,
		Moves:     s.moves,
		Finished:  s.finished,
		Winner:    s.winner,
		Stats:     s.eng.Stats(),
	}
}

type sessionState struct {
	SessionID string             `json:"session_id"`
	Moves     int                `json:"moves"`
	Finished  bool               `json:"finished"`
	Winner    int                `json:"winner"`
	Stats     engine.SearchStats `json:"stats"`
}

func engineSide(human engine.PlayerColor) engine.PlayerColor {
	if human == engine.PlayerBlack {
		return engine.PlayerWhite
	}
	return engine.PlayerBlack
}

func wirePlayer(player engine.PlayerColor) int {
	if player == engine.PlayerBlack {
		return 1
	}
	return 2
}
