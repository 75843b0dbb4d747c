package engine

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Threat records one urgent shape found during evaluation. Cell is the
// empty cell implicated by the shape (extension or gap); a completed five
// carries no cell. Threats live only within one evaluation result.
type Threat struct {
	Cell    Move        `json:"cell"`
	HasCell bool        `json:"has_cell"`
	Level   int         `json:"level"`
	Owner   PlayerColor `json:"owner"`
}

type Evaluation struct {
	Score   float64  `json:"score"`
	Threats []Threat `json:"threats"`
}

// EvaluatePosition scores the whole board from player's point of view and
// collects every non-zero threat. Validation applies; see evaluate for the
// internal path used during search.
func (e *Engine) EvaluatePosition(b *Board, player PlayerColor) (Evaluation, error) {
	if err := e.validate(b, player); err != nil {
		return Evaluation{}, err
	}
	return e.evaluate(b, player), nil
}

func (e *Engine) evaluate(b *Board, player PlayerColor) Evaluation {
	e.stats.EvalCalls++
	cell := CellFromPlayer(player)
	size := b.Size()
	eval := Evaluation{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b.At(x, y) != cell {
				continue
			}
			for _, dir := range directions {
				eval.Score += e.centerWeight(x, y)
				line := e.scanLine(b, x, y, dir[0], dir[1], player)
				eval.Score += line.score
				if line.level >= 0 && line.score > 0 {
					eval.Threats = append(eval.Threats, Threat{
						Cell:    line.critical,
						HasCell: line.hasCritical,
						Level:   line.level,
						Owner:   player,
					})
				}
			}
		}
	}
	return eval
}

// centerWeight grows toward the middle of the board.
func (e *Engine) centerWeight(x, y int) float64 {
	size := e.opts.BoardSize
	dx := x
	if size-1-x < dx {
		dx = size - 1 - x
	}
	dy := y
	if size-1-y < dy {
		dy = size - 1 - y
	}
	return e.opts.Weights.Center * float64(dx+dy)
}

// moveWeight is the positional value of placing at m.
func (e *Engine) moveWeight(m Move) float64 {
	return e.centerWeight(m.X, m.Y)
}

// threatCells collects the distinct cells implicated by opponent threats of
// at least minLevel. The search layer uses this as a forced-response set.
func threatCells(eval Evaluation, minLevel int) []Move {
	cells := make([]Move, 0, 4)
	for _, threat := range eval.Threats {
		if threat.Level < minLevel || !threat.HasCell {
			continue
		}
		duplicate := false
		for _, existing := range cells {
			if existing.Equals(threat.Cell) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			cells = append(cells, threat.Cell)
		}
	}
	return cells
}

// threatCellsAtLevel is threatCells restricted to one exact level.
func threatCellsAtLevel(eval Evaluation, level int) []Move {
	cells := make([]Move, 0, 4)
	for _, threat := range eval.Threats {
		if threat.Level != level || !threat.HasCell {
			continue
		}
		duplicate := false
		for _, existing := range cells {
			if existing.Equals(threat.Cell) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			cells = append(cells, threat.Cell)
		}
	}
	return cells
}
