package engine

// Search frontier locality: moves farther than this from every stone are
// never considered.
const candidateRadius = 2

// candidateMoves returns every empty cell within Chebyshev distance 2 of an
// occupied cell, in row-major order. An empty board yields only the center.
func candidateMoves(b *Board) []Move {
	size := b.Size()
	if b.CountStones() == 0 {
		center := size / 2
		return []Move{{X: center, Y: center}}
	}
	moves := make([]Move, 0, 64)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b.At(x, y) != CellEmpty {
				continue
			}
			if hasStoneNear(b, x, y, candidateRadius) {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

func hasStoneNear(b *Board, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			ny := y + dy
			if b.InBounds(nx, ny) && b.At(nx, ny) != CellEmpty {
				return true
			}
		}
	}
	return false
}
