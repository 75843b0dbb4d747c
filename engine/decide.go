package engine

import (
	"fmt"
	"time"
)

// SearchStats counts work done by the most recent Decide call. The
// counters reset at the start of every decision; the transposition cache
// does not.
type SearchStats struct {
	Nodes           int64 `json:"nodes"`
	EvalCalls       int64 `json:"eval_calls"`
	TTProbes        int64 `json:"tt_probes"`
	TTHits          int64 `json:"tt_hits"`
	TTStores        int64 `json:"tt_stores"`
	Cutoffs         int64 `json:"cutoffs"`
	CompletedDepths int   `json:"completed_depths"`
}

// Engine decides moves for one fixed board size. Decision calls against a
// single instance must be serialized: the candidate board is mutated
// speculatively during search and cache writes are not synchronized.
type Engine struct {
	opts         Options
	zobrist      *zobristTable
	tt           *transpositionTable
	stats        SearchStats
	lastStrategy string
}

func New(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	if opts.BoardSize < 5 {
		return nil, fmt.Errorf("%w: board size %d below minimum 5", ErrInvalidOptions, opts.BoardSize)
	}
	return &Engine{
		opts:    opts,
		zobrist: newZobristTable(opts.BoardSize),
		tt:      newTranspositionTable(opts.CacheCap),
	}, nil
}

func (e *Engine) Options() Options {
	return e.opts
}

func (e *Engine) Stats() SearchStats {
	return e.stats
}

// LastStrategy names the decision step that produced the most recent move,
// empty before the first decision or after a no-move result.
func (e *Engine) LastStrategy() string {
	return e.lastStrategy
}

func (e *Engine) CacheSize() int {
	return e.tt.size()
}

func (e *Engine) ClearCache() {
	e.tt.clear()
}

func (e *Engine) validate(b *Board, player PlayerColor) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidBoard)
	}
	size := e.opts.BoardSize
	if b.size != size || len(b.cells) != size*size {
		return fmt.Errorf("%w: got %d cells for size %d, engine expects %dx%d", ErrInvalidBoard, len(b.cells), b.size, size, size)
	}
	for i, cell := range b.cells {
		if cell != CellEmpty && cell != CellBlack && cell != CellWhite {
			return fmt.Errorf("%w: cell %d holds unknown value %d", ErrInvalidBoard, i, cell)
		}
	}
	if player != PlayerBlack && player != PlayerWhite {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	return nil
}

type strategyFn func(*Engine, *Board, PlayerColor) (Move, bool)

type strategy struct {
	name string
	pick strategyFn
}

// The decision chain runs in fixed priority order and stops at the first
// strategy that produces a move.
var decisionChain = []strategy{
	{"opening-center", (*Engine).openingCenter},
	{"win-in-one", (*Engine).winInOne},
	{"block-five", (*Engine).blockFive},
	{"block-open-four", (*Engine).blockOpenFour},
	{"block-open-three", (*Engine).blockOpenThree},
	{"forced-win", (*Engine).forcedWinSelf},
	{"deny-forced-win", (*Engine).denyForcedWin},
	{"deep-search", (*Engine).deepSearch},
	{"fallback", (*Engine).fallback},
}

// Decide picks the next move for player. The board is returned in exactly
// the state it came in: every speculative placement is undone on every
// path. A false second return with nil error means no legal move exists.
func (e *Engine) Decide(b *Board, player PlayerColor) (Move, bool, error) {
	if err := e.validate(b, player); err != nil {
		return Move{}, false, err
	}
	e.stats = SearchStats{}
	e.lastStrategy = ""
	for _, s := range decisionChain {
		if m, ok := s.pick(e, b, player); ok {
			e.lastStrategy = s.name
			return m, true, nil
		}
	}
	return Move{}, false, nil
}

func (e *Engine) openingCenter(b *Board, player PlayerColor) (Move, bool) {
	if b.CountStones() != 0 {
		return Move{}, false
	}
	center := e.opts.BoardSize / 2
	return Move{X: center, Y: center}, true
}

// winInOne plays any move completing a five. The forbidden-move check is
// bypassed: finishing the game always takes precedence.
func (e *Engine) winInOne(b *Board, player PlayerColor) (Move, bool) {
	cell := CellFromPlayer(player)
	for _, m := range candidateMoves(b) {
		b.Set(m.X, m.Y, cell)
		won := checkWin(b, m.X, m.Y, player)
		b.Remove(m.X, m.Y)
		if won {
			return m, true
		}
	}
	return Move{}, false
}

// blockFive blocks an opponent five-completion. Unlike winInOne the
// forbidden filter still applies here, so a double-three blocking cell is
// skipped. Deliberately asymmetric; see the tests pinning this behavior.
func (e *Engine) blockFive(b *Board, player PlayerColor) (Move, bool) {
	for _, cell := range fiveCompletions(b, otherPlayer(player)) {
		if e.isForbiddenMove(b, cell, player) {
			continue
		}
		return cell, true
	}
	return Move{}, false
}

func (e *Engine) blockOpenFour(b *Board, player PlayerColor) (Move, bool) {
	eval := e.evaluate(b, otherPlayer(player))
	for _, threat := range eval.Threats {
		if threat.Level != ThreatOpenFour || !threat.HasCell {
			continue
		}
		if !b.IsEmpty(threat.Cell.X, threat.Cell.Y) {
			continue
		}
		if e.isForbiddenMove(b, threat.Cell, player) {
			continue
		}
		return threat.Cell, true
	}
	return Move{}, false
}

// blockOpenThree blocks the most threatening open-three cell: the one
// whose occupation by the opponent would score highest for them.
func (e *Engine) blockOpenThree(b *Board, player PlayerColor) (Move, bool) {
	opponent := otherPlayer(player)
	eval := e.evaluate(b, opponent)
	oppCell := CellFromPlayer(opponent)

	var best Move
	bestScore := 0.0
	found := false
	for _, cell := range threatCellsAtLevel(eval, ThreatOpenThree) {
		if !b.IsEmpty(cell.X, cell.Y) {
			continue
		}
		if e.isForbiddenMove(b, cell, player) {
			continue
		}
		b.Set(cell.X, cell.Y, oppCell)
		score := e.evaluate(b, opponent).Score
		b.Remove(cell.X, cell.Y)
		if !found || score > bestScore {
			best = cell
			bestScore = score
			found = true
		}
	}
	return best, found
}

func (e *Engine) forcedWinSelf(b *Board, player PlayerColor) (Move, bool) {
	return e.forcedWin(b, player, e.opts.VCFDepthSelf)
}

// denyForcedWin pre-emptively occupies the opening move of an opponent
// forced-win sequence.
func (e *Engine) denyForcedWin(b *Board, player PlayerColor) (Move, bool) {
	m, ok := e.forcedWin(b, otherPlayer(player), e.opts.VCFDepthOpponent)
	if !ok || !b.IsEmpty(m.X, m.Y) {
		return Move{}, false
	}
	return m, true
}

func (e *Engine) deepSearch(b *Board, player PlayerColor) (Move, bool) {
	budget := time.Duration(e.opts.TimeLimitMs) * time.Millisecond
	return e.iterativeDeepening(b, player, budget)
}

func (e *Engine) fallback(b *Board, player PlayerColor) (Move, bool) {
	center := e.opts.BoardSize / 2
	if b.IsEmpty(center, center) {
		return Move{X: center, Y: center}, true
	}
	if moves := candidateMoves(b); len(moves) > 0 {
		return moves[0], true
	}
	return Move{}, false
}
