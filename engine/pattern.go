package engine

// The evaluator works on short line windows rendered as three-valued
// symbols. Off-board and opponent cells both render as blocked, so every
// template bound is expressed inside the window itself.
type lineSym byte

const (
	symEmpty lineSym = iota
	symStone
	symBlocked
)

const (
	evalRadius      = 5
	evalWindowLen   = evalRadius*2 + 1
	forbidRadius    = 4
	forbidWindowLen = forbidRadius*2 + 1
)

// Threat levels, most urgent first.
const (
	ThreatFive      = 5
	ThreatOpenFour  = 4
	ThreatDeadFour  = 3
	ThreatOpenThree = 2
	ThreatDeadThree = 1
	ThreatLow       = 0
)

type patternKind int

const (
	patternFive patternKind = iota
	patternOpenFour
	patternDeadFour
	patternOpenThree
	patternDeadThree
	patternOpenTwo
	patternDeadTwo
)

type lineTemplate struct {
	cells    []lineSym
	kind     patternKind
	level    int
	critical int // offset of the critical empty cell, -1 for none
}

// Notation matches the window rendering: M stone, . empty, O blocked.
func tpl(pattern string, kind patternKind, level int, critical int) lineTemplate {
	cells := make([]lineSym, len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case 'M':
			cells[i] = symStone
		case '.':
			cells[i] = symEmpty
		default:
			cells[i] = symBlocked
		}
	}
	return lineTemplate{cells: cells, kind: kind, level: level, critical: critical}
}

// Ordered by strength; the scan stops at the first kind that matches.
var lineTemplates = []lineTemplate{
	tpl("MMMMM", patternFive, ThreatFive, -1),

	tpl(".MMMM.", patternOpenFour, ThreatOpenFour, 0),

	tpl("OMMMM.", patternDeadFour, ThreatDeadFour, 5),
	tpl(".MMMMO", patternDeadFour, ThreatDeadFour, 0),
	tpl("MMM.M", patternDeadFour, ThreatDeadFour, 3),
	tpl("M.MMM", patternDeadFour, ThreatDeadFour, 1),
	tpl("MM.MM", patternDeadFour, ThreatDeadFour, 2),

	tpl(".MMM.", patternOpenThree, ThreatOpenThree, 0),
	tpl(".MM.M.", patternOpenThree, ThreatOpenThree, 3),
	tpl(".M.MM.", patternOpenThree, ThreatOpenThree, 2),

	tpl("OMMM.", patternDeadThree, ThreatDeadThree, 4),
	tpl(".MMMO", patternDeadThree, ThreatDeadThree, 0),

	tpl(".MM.", patternOpenTwo, ThreatLow, 0),
	tpl(".M.M.", patternDeadTwo, ThreatLow, 2),
	tpl("OMM.", patternDeadTwo, ThreatLow, 3),
	tpl(".MMO", patternDeadTwo, ThreatLow, 0),
}

func weightFor(kind patternKind, w Weights) float64 {
	switch kind {
	case patternFive:
		return w.Five
	case patternOpenFour:
		return w.OpenFour
	case patternDeadFour:
		return w.DeadFour
	case patternOpenThree:
		return w.OpenThree
	case patternDeadThree:
		return w.DeadThree
	case patternOpenTwo:
		return w.OpenTwo
	default:
		return w.DeadTwo
	}
}

// renderLine fills window with the cells around (x,y) along (dx,dy).
// window[radius] is the evaluated stone itself.
func renderLine(b *Board, x, y, dx, dy, radius int, owner PlayerColor, window []lineSym) {
	ownCell := CellFromPlayer(owner)
	for i := -radius; i <= radius; i++ {
		cx := x + i*dx
		cy := y + i*dy
		sym := symBlocked
		if b.InBounds(cx, cy) {
			switch cell := b.At(cx, cy); {
			case cell == CellEmpty:
				sym = symEmpty
			case cell == ownCell:
				sym = symStone
			}
		}
		window[i+radius] = sym
	}
}

func matchTemplateAt(window []lineSym, t lineTemplate, start int) bool {
	if start < 0 || start+len(t.cells) > len(window) {
		return false
	}
	for i, sym := range t.cells {
		if window[start+i] != sym {
			return false
		}
	}
	return true
}

// matchTemplate finds the template anywhere in the window as long as the
// span covers the window center, and reports the match start.
func matchTemplate(window []lineSym, t lineTemplate, center int) (int, bool) {
	for start := 0; start+len(t.cells) <= len(window); start++ {
		if center < start || center >= start+len(t.cells) {
			continue
		}
		if matchTemplateAt(window, t, start) {
			return start, true
		}
	}
	return 0, false
}

type lineResult struct {
	score       float64
	level       int
	critical    Move
	hasCritical bool
}

// scanLine scores the stone at (x,y) along one axis. Five and open four are
// terminal: they return immediately. Weaker shapes accumulate the single
// strongest match, then a contiguous-run bonus scaled by open ends.
func (e *Engine) scanLine(b *Board, x, y, dx, dy int, owner PlayerColor) lineResult {
	var window [evalWindowLen]lineSym
	renderLine(b, x, y, dx, dy, evalRadius, owner, window[:])

	result := lineResult{level: -1}
	for _, t := range lineTemplates {
		start, ok := matchTemplate(window[:], t, evalRadius)
		if !ok {
			continue
		}
		result.score = weightFor(t.kind, e.opts.Weights)
		result.level = t.level
		if t.critical >= 0 {
			off := start + t.critical - evalRadius
			result.critical = Move{X: x + off*dx, Y: y + off*dy}
			result.hasCritical = true
		}
		if t.kind == patternFive || t.kind == patternOpenFour {
			return result
		}
		break
	}

	run := 1
	run += countContiguous(b, x, y, dx, dy, CellFromPlayer(owner))
	run += countContiguous(b, x, y, -dx, -dy, CellFromPlayer(owner))
	openEnds := countOpenEnds(b, x, y, dx, dy, CellFromPlayer(owner))
	switch openEnds {
	case 2:
		result.score += float64(run) * e.opts.Weights.RunBothOpen
	case 1:
		result.score += float64(run) * e.opts.Weights.RunOneOpen
	}
	return result
}

func countContiguous(b *Board, x, y, dx, dy int, target Cell) int {
	count := 0
	nx := x + dx
	ny := y + dy
	for b.InBounds(nx, ny) && b.At(nx, ny) == target {
		count++
		nx += dx
		ny += dy
	}
	return count
}

func countOpenEnds(b *Board, x, y, dx, dy int, target Cell) int {
	open := 0
	forward := countContiguous(b, x, y, dx, dy, target)
	if b.IsEmpty(x+(forward+1)*dx, y+(forward+1)*dy) {
		open++
	}
	backward := countContiguous(b, x, y, -dx, -dy, target)
	if b.IsEmpty(x-(backward+1)*dx, y-(backward+1)*dy) {
		open++
	}
	return open
}
