package engine

// forcedWin searches for a victory by continuous fours: each attacking move
// must create a four, and only branches where the defender has exactly one
// forced reply are followed. Two or more replies mean the defender has a
// real choice and the chain is abandoned. Incomplete by design, which keeps
// useful depth cheap.
func (e *Engine) forcedWin(b *Board, attacker PlayerColor, depth int) (Move, bool) {
	if depth <= 0 {
		return Move{}, false
	}
	defender := otherPlayer(attacker)
	attackerCell := CellFromPlayer(attacker)
	for _, m := range candidateMoves(b) {
		// A forcing sequence has to stay legal for the attacker.
		if e.isForbiddenMove(b, m, attacker) {
			continue
		}
		b.Set(m.X, m.Y, attackerCell)
		if checkWin(b, m.X, m.Y, attacker) {
			b.Remove(m.X, m.Y)
			return m, true
		}
		if makesFour(b, m.X, m.Y, attacker) {
			// Forced defenses: cells where the defender could complete a
			// five of their own, treated as the cells the attacker must
			// deny.
			defenses := fiveCompletions(b, defender)
			switch len(defenses) {
			case 0:
				b.Remove(m.X, m.Y)
				return m, true
			case 1:
				reply := defenses[0]
				b.Set(reply.X, reply.Y, CellFromPlayer(defender))
				_, won := e.forcedWin(b, attacker, depth-1)
				b.Remove(reply.X, reply.Y)
				if won {
					b.Remove(m.X, m.Y)
					return m, true
				}
			}
		}
		b.Remove(m.X, m.Y)
	}
	return Move{}, false
}
