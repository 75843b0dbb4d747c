package engine

import "math"

// Decisive leaf value; dominates every evaluator differential.
const decisiveScore = 10_000_000.0

const perspectiveKey = 0x9e3779b97f4a7c15

type searchContext struct {
	// player is the side the search maximizes for; fixed at the root.
	player PlayerColor
}

func (e *Engine) ttKey(hash uint64, current, perspective PlayerColor) uint64 {
	key := hash
	if current == PlayerWhite {
		key ^= e.zobrist.side
	}
	if perspective == PlayerWhite {
		key ^= perspectiveKey
	}
	return key
}

func (e *Engine) storeTT(key uint64, depth int, value float64) {
	e.stats.TTStores++
	e.tt.store(key, depth, value)
}

func (e *Engine) leafValue(b *Board, perspective PlayerColor) float64 {
	own := e.evaluate(b, perspective).Score
	opp := e.evaluate(b, otherPlayer(perspective)).Score
	return own - opp
}

// forcedResponses restricts the move set when the side to move is staring
// at an opponent dead four or stronger: only the implicated cells are
// legal replies, and the move orderer is bypassed entirely.
func (e *Engine) forcedResponses(b *Board, current PlayerColor) []Move {
	eval := e.evaluate(b, otherPlayer(current))
	cells := threatCells(eval, ThreatDeadFour)
	moves := cells[:0]
	for _, cell := range cells {
		if b.IsEmpty(cell.X, cell.Y) {
			moves = append(moves, cell)
		}
	}
	return moves
}

// minimax with alpha-beta pruning over a position-hash cache. hash is the
// incremental Zobrist hash of b; wonByLast marks that the previous move
// completed a win, making this node terminal.
func (e *Engine) minimax(b *Board, ctx *searchContext, depth int, current PlayerColor, hash uint64, wonByLast bool, alpha, beta float64) float64 {
	e.stats.Nodes++
	key := e.ttKey(hash, current, ctx.player)
	e.stats.TTProbes++
	if value, ok := e.tt.probe(key, depth); ok {
		e.stats.TTHits++
		return value
	}

	if wonByLast {
		value := decisiveScore
		if otherPlayer(current) != ctx.player {
			value = -decisiveScore
		}
		e.storeTT(key, depth, value)
		return value
	}
	if depth <= 0 {
		value := e.leafValue(b, ctx.player)
		e.storeTT(key, depth, value)
		return value
	}

	moves := e.forcedResponses(b, current)
	if len(moves) == 0 {
		moves = e.orderMoves(b, current)
	}
	if len(moves) == 0 {
		value := e.leafValue(b, ctx.player)
		e.storeTT(key, depth, value)
		return value
	}

	maximizing := current == ctx.player
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	cell := CellFromPlayer(current)
	for _, m := range moves {
		b.Set(m.X, m.Y, cell)
		childHash := hash ^ e.zobrist.stone(m.X, m.Y, current)
		won := checkWin(b, m.X, m.Y, current)
		value := e.minimax(b, ctx, depth-1, otherPlayer(current), childHash, won, alpha, beta)
		b.Remove(m.X, m.Y)

		if maximizing {
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best = value
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			e.stats.Cutoffs++
			break
		}
	}

	e.storeTT(key, depth, best)
	return best
}
