package engine

import "testing"

func rowOfStones(b *Board, y, from, to int, cell Cell) {
	for x := from; x <= to; x++ {
		b.Set(x, y, cell)
	}
}

func TestEvaluateShapeOrdering(t *testing.T) {
	e := newTestEngine(t)

	three := NewBoard(15)
	rowOfStones(three, 7, 5, 7, CellBlack)
	four := NewBoard(15)
	rowOfStones(four, 7, 5, 8, CellBlack)
	five := NewBoard(15)
	rowOfStones(five, 7, 5, 9, CellBlack)

	scoreThree, err := e.EvaluatePosition(three, PlayerBlack)
	if err != nil {
		t.Fatalf("EvaluatePosition: %v", err)
	}
	scoreFour, _ := e.EvaluatePosition(four, PlayerBlack)
	scoreFive, _ := e.EvaluatePosition(five, PlayerBlack)

	if !(scoreFive.Score > scoreFour.Score && scoreFour.Score > scoreThree.Score) {
		t.Fatalf("expected five > four > three, got %v / %v / %v",
			scoreFive.Score, scoreFour.Score, scoreThree.Score)
	}
	if scoreFive.Score < e.opts.Weights.Five {
		t.Fatalf("a five on the board must score at least the five weight, got %v", scoreFive.Score)
	}
}

func TestEvaluateOpenFourThreat(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	rowOfStones(b, 7, 5, 8, CellBlack)

	eval, err := e.EvaluatePosition(b, PlayerBlack)
	if err != nil {
		t.Fatalf("EvaluatePosition: %v", err)
	}
	found := false
	for _, threat := range eval.Threats {
		if threat.Level == ThreatOpenFour && threat.HasCell {
			found = true
			if !threat.Cell.Equals(Move{X: 4, Y: 7}) && !threat.Cell.Equals(Move{X: 9, Y: 7}) {
				t.Fatalf("open-four threat cell (%d,%d) not at an end", threat.Cell.X, threat.Cell.Y)
			}
		}
	}
	if !found {
		t.Fatalf("expected an open-four threat, got %+v", eval.Threats)
	}
}

func TestEvaluateOpenThreeThreat(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	rowOfStones(b, 7, 5, 7, CellBlack)

	eval, err := e.EvaluatePosition(b, PlayerBlack)
	if err != nil {
		t.Fatalf("EvaluatePosition: %v", err)
	}
	cells := threatCellsAtLevel(eval, ThreatOpenThree)
	if len(cells) == 0 {
		t.Fatalf("expected open-three threat cells, got %+v", eval.Threats)
	}
	for _, cell := range cells {
		if !b.IsEmpty(cell.X, cell.Y) {
			t.Fatalf("threat cell (%d,%d) is occupied", cell.X, cell.Y)
		}
	}
}

func TestEvaluateBrokenThreeThreat(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	b.Set(5, 7, CellBlack)
	b.Set(6, 7, CellBlack)
	b.Set(8, 7, CellBlack)

	eval, err := e.EvaluatePosition(b, PlayerBlack)
	if err != nil {
		t.Fatalf("EvaluatePosition: %v", err)
	}
	cells := threatCellsAtLevel(eval, ThreatOpenThree)
	found := false
	for _, cell := range cells {
		if cell.Equals(Move{X: 7, Y: 7}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("broken three must flag the gap (7,7), got %v", cells)
	}
}

func TestEvaluateCenterPreference(t *testing.T) {
	e := newTestEngine(t)
	center := NewBoard(15)
	center.Set(7, 7, CellBlack)
	corner := NewBoard(15)
	corner.Set(0, 0, CellBlack)

	centerEval, _ := e.EvaluatePosition(center, PlayerBlack)
	cornerEval, _ := e.EvaluatePosition(corner, PlayerBlack)
	if centerEval.Score <= cornerEval.Score {
		t.Fatalf("center stone %v must outscore corner stone %v", centerEval.Score, cornerEval.Score)
	}
}

func TestEvaluateIgnoresOpponentStones(t *testing.T) {
	e := newTestEngine(t)
	b := NewBoard(15)
	rowOfStones(b, 7, 5, 8, CellWhite)

	eval, err := e.EvaluatePosition(b, PlayerBlack)
	if err != nil {
		t.Fatalf("EvaluatePosition: %v", err)
	}
	if eval.Score != 0 || len(eval.Threats) != 0 {
		t.Fatalf("opponent-only board must score 0 for black, got %v / %+v", eval.Score, eval.Threats)
	}
}
