package engine

import (
	"math"
	"time"
)

// Budget gates: a new depth may start while under 80% of the budget, and
// root moves keep evaluating while under 90%. An in-flight search node is
// never interrupted; these are the only cancellation points.
const (
	depthStartFraction = 0.8
	rootMoveFraction   = 0.9
)

// iterativeDeepening runs the search at increasing depth under the time
// budget and keeps the best move across completed depths. A depth cut off
// mid-way contributes nothing; a deeper result replaces an earlier one
// only when strictly better.
func (e *Engine) iterativeDeepening(b *Board, player PlayerColor, budget time.Duration) (Move, bool) {
	start := time.Now()
	baseHash := e.zobrist.hashBoard(b)
	ctx := &searchContext{player: player}
	cell := CellFromPlayer(player)

	var bestMove Move
	bestScore := math.Inf(-1)
	found := false

	for depth := 2; depth <= e.opts.MaxSearchDepth; depth++ {
		if time.Since(start) > fraction(budget, depthStartFraction) {
			break
		}
		moves := e.orderMoves(b, player)
		if len(moves) == 0 {
			break
		}

		depthBest := Move{}
		depthScore := math.Inf(-1)
		depthFound := false
		completed := true
		for _, m := range moves {
			if time.Since(start) > fraction(budget, rootMoveFraction) {
				completed = false
				break
			}
			b.Set(m.X, m.Y, cell)
			childHash := baseHash ^ e.zobrist.stone(m.X, m.Y, player)
			won := checkWin(b, m.X, m.Y, player)
			score := e.minimax(b, ctx, depth-1, otherPlayer(player), childHash, won, math.Inf(-1), math.Inf(1))
			b.Remove(m.X, m.Y)
			if !depthFound || score > depthScore {
				depthScore = score
				depthBest = m
				depthFound = true
			}
		}
		if !completed {
			break
		}
		e.stats.CompletedDepths++
		if depthFound && (!found || depthScore > bestScore) {
			bestScore = depthScore
			bestMove = depthBest
			found = true
		}
	}
	return bestMove, found
}

func fraction(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
