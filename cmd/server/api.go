package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dkim-bro/omok2025/engine"
)

// engineService serializes access to one shared engine instance. Decide
// mutates the board speculatively, so concurrent HTTP handlers must not
// interleave calls.
type engineService struct {
	mu     sync.Mutex
	engine *engine.Engine
}

func newEngineService(opts engine.Options) (*engineService, error) {
	e, err := engine.New(opts)
	if err != nil {
		return nil, err
	}
	return &engineService{engine: e}, nil
}

type decideRequest struct {
	Board  [][]int `json:"board"`
	Player int     `json:"player"`
}

type decideResponse struct {
	Move  *engine.Move       `json:"move"`
	Ok    bool               `json:"ok"`
	Stats engine.SearchStats `json:"stats"`
}

type evaluateResponse struct {
	Evaluation engine.Evaluation `json:"evaluation"`
}

type cacheStatusResponse struct {
	Entries  int `json:"entries"`
	Capacity int `json:"capacity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *engineService) decide(b *engine.Board, player engine.PlayerColor) (decideResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok, err := s.engine.Decide(b, player)
	if err != nil {
		return decideResponse{}, err
	}
	resp := decideResponse{Ok: ok, Stats: s.engine.Stats()}
	if ok {
		resp.Move = &m
	}
	return resp, nil
}

func (s *engineService) evaluate(b *engine.Board, player engine.PlayerColor) (evaluateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	eval, err := s.engine.EvaluatePosition(b, player)
	if err != nil {
		return evaluateResponse{}, err
	}
	return evaluateResponse{Evaluation: eval}, nil
}

func (s *engineService) cacheStatus() cacheStatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cacheStatusResponse{
		Entries:  s.engine.CacheSize(),
		Capacity: s.engine.Options().CacheCap,
	}
}

func (s *engineService) clearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.ClearCache()
}

func (s *engineService) saveCache(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SaveCache(path)
}

func (s *engineService) loadCache(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.LoadCache(path)
}

func (s *engineService) boardSize() int {
	return s.engine.Options().BoardSize
}

func (s *engineService) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json: " + err.Error()})
		return
	}
	b, player, err := parsePosition(req.Board, req.Player, s.boardSize())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	resp, err := s.decide(b, player)
	if err != nil {
		writeJSON(w, statusForEngineError(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *engineService) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json: " + err.Error()})
		return
	}
	b, player, err := parsePosition(req.Board, req.Player, s.boardSize())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	resp, err := s.evaluate(b, player)
	if err != nil {
		writeJSON(w, statusForEngineError(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *engineService) handleCacheStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cacheStatus())
}

func (s *engineService) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.clearCache()
	writeJSON(w, http.StatusOK, s.cacheStatus())
}

func statusForEngineError(err error) int {
	if errors.Is(err, engine.ErrInvalidBoard) || errors.Is(err, engine.ErrInvalidPlayer) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// parsePosition converts the wire grid (0 empty, 1 black, 2 white) into an
// engine board.
func parsePosition(grid [][]int, player int, size int) (*engine.Board, engine.PlayerColor, error) {
	if len(grid) != size {
		return nil, 0, fmt.Errorf("board has %d rows, expected %d", len(grid), size)
	}
	b := engine.NewBoard(size)
	for y, row := range grid {
		if len(row) != size {
			return nil, 0, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), size)
		}
		for x, value := range row {
			switch value {
			case 0:
			case 1:
				b.Set(x, y, engine.CellBlack)
			case 2:
				b.Set(x, y, engine.CellWhite)
			default:
				return nil, 0, fmt.Errorf("cell (%d,%d) holds unknown value %d", x, y, value)
			}
		}
	}
	color, err := parsePlayer(player)
	if err != nil {
		return nil, 0, err
	}
	return b, color, nil
}

func parsePlayer(player int) (engine.PlayerColor, error) {
	switch player {
	case 1:
		return engine.PlayerBlack, nil
	case 2:
		return engine.PlayerWhite, nil
	default:
		return 0, fmt.Errorf("player must be 1 (black) or 2 (white), got %d", player)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
