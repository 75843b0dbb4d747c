package engine

// CheckWin reports whether the stone at (x,y) completes five or more in a
// row for player. Pure: the board is never touched.
func (e *Engine) CheckWin(b *Board, x, y int, player PlayerColor) bool {
	return checkWin(b, x, y, player)
}

func checkWin(b *Board, x, y int, player PlayerColor) bool {
	cell := CellFromPlayer(player)
	for _, dir := range directions {
		count := 1
		count += countContiguous(b, x, y, dir[0], dir[1], cell)
		count += countContiguous(b, x, y, -dir[0], -dir[1], cell)
		if count >= 5 {
			return true
		}
	}
	return false
}

// IsForbidden reports whether placing player's stone at (x,y) creates two
// or more simultaneous open threes (double-three). Advisory: the decision
// policy never lets it suppress a five or a five-block.
func (e *Engine) IsForbidden(b *Board, x, y int, player PlayerColor) bool {
	if !b.IsEmpty(x, y) {
		return false
	}
	cell := CellFromPlayer(player)
	b.Set(x, y, cell)
	openThrees := 0
	for _, dir := range directions {
		if hasOpenThree(b, x, y, dir[0], dir[1], player) {
			openThrees++
			if openThrees >= 2 {
				break
			}
		}
	}
	b.Remove(x, y)
	return openThrees >= 2
}

func (e *Engine) isForbiddenMove(b *Board, m Move, player PlayerColor) bool {
	return e.IsForbidden(b, m.X, m.Y, player)
}

// hasOpenThree renders a 9-cell window around (x,y) and looks for a live
// three containing the placed stone: a straight .MMM. or a broken three
// whose gap fill would yield an open four.
func hasOpenThree(b *Board, x, y, dx, dy int, owner PlayerColor) bool {
	var window [forbidWindowLen]lineSym
	renderLine(b, x, y, dx, dy, forbidRadius, owner, window[:])

	for start := 0; start+5 <= forbidWindowLen; start++ {
		if forbidRadius < start || forbidRadius >= start+5 {
			continue
		}
		if window[start] == symEmpty &&
			window[start+1] == symStone &&
			window[start+2] == symStone &&
			window[start+3] == symStone &&
			window[start+4] == symEmpty {
			return true
		}
	}
	for start := 0; start+6 <= forbidWindowLen; start++ {
		if forbidRadius < start || forbidRadius >= start+6 {
			continue
		}
		if window[start] != symEmpty || window[start+5] != symEmpty {
			continue
		}
		c1 := window[start+1]
		c2 := window[start+2]
		c3 := window[start+3]
		c4 := window[start+4]
		if c1 == symStone && c2 == symStone && c3 == symEmpty && c4 == symStone {
			return true
		}
		if c1 == symStone && c2 == symEmpty && c3 == symStone && c4 == symStone {
			return true
		}
	}
	return false
}

// fiveCompletions lists every empty cell where player would complete five
// or more in a row.
func fiveCompletions(b *Board, player PlayerColor) []Move {
	size := b.Size()
	cell := CellFromPlayer(player)
	moves := make([]Move, 0, 4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !b.IsEmpty(x, y) {
				continue
			}
			for _, dir := range directions {
				left := countContiguous(b, x, y, -dir[0], -dir[1], cell)
				right := countContiguous(b, x, y, dir[0], dir[1], cell)
				if left+right+1 >= 5 {
					moves = append(moves, Move{X: x, Y: y})
					break
				}
			}
		}
	}
	return moves
}

// makesFour reports whether the stone just placed at (x,y) forms exactly a
// four-length run on some axis (five is handled by checkWin first).
func makesFour(b *Board, x, y int, player PlayerColor) bool {
	cell := CellFromPlayer(player)
	for _, dir := range directions {
		count := 1
		count += countContiguous(b, x, y, dir[0], dir[1], cell)
		count += countContiguous(b, x, y, -dir[0], -dir[1], cell)
		if count == 4 {
			return true
		}
	}
	return false
}
