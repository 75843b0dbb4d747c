package engine

import "sort"

// Branching cap for ordered candidates.
const maxOrderedMoves = 15

type scoredMove struct {
	move  Move
	score float64
}

// orderMoves ranks the candidate frontier for player. A move that wins
// outright short-circuits to a singleton. Otherwise each move is scored by
// simulated evaluation plus positional weight, with a defensive bonus when
// the same cell held by the opponent would score very high for them.
func (e *Engine) orderMoves(b *Board, player PlayerColor) []Move {
	opponent := otherPlayer(player)
	playerCell := CellFromPlayer(player)
	opponentCell := CellFromPlayer(opponent)
	weights := e.opts.Weights

	scored := make([]scoredMove, 0, 32)
	for _, m := range candidateMoves(b) {
		if e.isForbiddenMove(b, m, player) {
			continue
		}
		b.Set(m.X, m.Y, playerCell)
		if checkWin(b, m.X, m.Y, player) {
			b.Remove(m.X, m.Y)
			return []Move{m}
		}
		score := e.evaluate(b, player).Score + e.moveWeight(m)
		b.Remove(m.X, m.Y)

		b.Set(m.X, m.Y, opponentCell)
		opponentScore := e.evaluate(b, opponent).Score
		b.Remove(m.X, m.Y)
		if opponentScore >= weights.DefenseThreshold {
			score += opponentScore * weights.DefenseScale
		}

		scored = append(scored, scoredMove{move: m, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxOrderedMoves {
		scored = scored[:maxOrderedMoves]
	}
	moves := make([]Move, 0, len(scored))
	for _, entry := range scored {
		moves = append(moves, entry.move)
	}
	return moves
}
