package engine

// zobristTable holds one random key per cell per occupant. Keys derive
// deterministically from the board size so that hashes, and therefore
// persisted cache snapshots, stay stable across processes. Hashes are
// combined by XOR, so a single cell change toggles exactly two keys.
type zobristTable struct {
	size  int
	cells []uint64
	side  uint64
}

func newZobristTable(size int) *zobristTable {
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &zobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	return table
}

func (z *zobristTable) stone(x, y int, player PlayerColor) uint64 {
	idx := (y*z.size + x) * 2
	if player == PlayerWhite {
		idx++
	}
	return z.cells[idx]
}

func (z *zobristTable) hashBoard(b *Board) uint64 {
	var hash uint64
	for y := 0; y < z.size; y++ {
		for x := 0; x < z.size; x++ {
			switch b.At(x, y) {
			case CellBlack:
				hash ^= z.stone(x, y, PlayerBlack)
			case CellWhite:
				hash ^= z.stone(x, y, PlayerWhite)
			}
		}
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
