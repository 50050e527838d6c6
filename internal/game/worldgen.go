package game

// Level is the static layout of one round.
type Level struct {
	Ruins CellSet
	Trees []Cell
}

// Ruin shapes as offsets from an anchor.
var ruinTemplates = [...][]Cell{
	{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}}, // L
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, // reverse L
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},         // square
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},         // horizontal wall
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},         // vertical wall
	{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}}, // T
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}, // cross
	{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}, // S
	{{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}}, // dots
}

// SafeZone returns the cells kept clear of ruins and trees: both corner
// spawn areas and the centre.
func SafeZone(g Grid) CellSet {
	safe := make(CellSet)
	for x := 0; x < SafeCorner; x++ {
		for y := 0; y < SafeCorner; y++ {
			safe.Add(Cell{x, y})
		}
	}
	for x := g.W - SafeCorner; x < g.W; x++ {
		for y := g.H - SafeCorner; y < g.H; y++ {
			safe.Add(Cell{x, y})
		}
	}
	c := g.Centre()
	for x := c.X - SafeCentre; x <= c.X+SafeCentre; x++ {
		for y := c.Y - SafeCentre; y <= c.Y+SafeCentre; y++ {
			safe.Add(Cell{x, y})
		}
	}
	return safe
}

// GenerateLevel places ruins then trees for the given difficulty. Running
// out of attempts yields a partial layout.
func GenerateLevel(g Grid, d Difficulty, rng *Rand) Level {
	safe := SafeZone(g)
	ruins := generateRuins(g, d.Ruins, safe, rng)
	blocked := make(CellSet, len(ruins)+len(safe))
	for c := range ruins {
		blocked.Add(c)
	}
	for c := range safe {
		blocked.Add(c)
	}
	return Level{Ruins: ruins, Trees: generateTrees(g, d.Trees, blocked, rng)}
}

func rotateQuarter(cells []Cell, turns int) []Cell {
	out := append([]Cell(nil), cells...)
	for t := 0; t < turns; t++ {
		for i, c := range out {
			out[i] = Cell{X: -c.Y, Y: c.X}
		}
	}
	return out
}

func bounds(cells []Cell) (minX, minY, maxX, maxY int) {
	minX, minY = cells[0].X, cells[0].Y
	maxX, maxY = minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return
}

func generateRuins(g Grid, count int, safe CellSet, rng *Rand) CellSet {
	ruins := make(CellSet)
	for _, piece := range placeRuins(g, count, safe, rng) {
		for _, c := range piece {
			ruins.Add(c)
		}
	}
	return ruins
}

// placeRuins returns the accepted template placements in order.
func placeRuins(g Grid, count int, safe CellSet, rng *Rand) [][]Cell {
	ruins := make(CellSet)
	var pieces [][]Cell
	for attempts := 0; len(pieces) < count && attempts < count*RuinAttemptsPer; attempts++ {
		tpl := ruinTemplates[rng.Intn(len(ruinTemplates))]
		shape := rotateQuarter(tpl, rng.Range(0, 3))
		minX, minY, maxX, maxY := bounds(shape)
		ox := rng.Range(2-minX, g.W-3-maxX)
		oy := rng.Range(2-minY, g.H-3-maxY)

		cells := make([]Cell, len(shape))
		for i, c := range shape {
			cells[i] = Cell{X: c.X + ox, Y: c.Y + oy}
		}
		if !ruinFits(g, cells, ruins, safe) {
			continue
		}
		for _, c := range cells {
			ruins.Add(c)
		}
		pieces = append(pieces, cells)
	}
	return pieces
}

func ruinFits(g Grid, cells []Cell, ruins, safe CellSet) bool {
	for _, c := range cells {
		if c.X < 1 || c.X >= g.W-1 || c.Y < 1 || c.Y >= g.H-1 {
			return false
		}
		if ruins.Has(c) || safe.Has(c) {
			return false
		}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if ruins.Has(Cell{c.X + dx, c.Y + dy}) {
					return false
				}
			}
		}
	}
	return true
}

func generateTrees(g Grid, count int, blocked CellSet, rng *Rand) []Cell {
	trees := make([]Cell, 0, count)
	for attempts := 0; len(trees) < count && attempts < count*TreeAttemptsPer; attempts++ {
		c := Cell{X: rng.Range(1, g.W-2), Y: rng.Range(1, g.H-2)}
		if blocked.Has(c) {
			continue
		}
		near := false
		for _, t := range trees {
			if abs(c.X-t.X) <= TreeSpacing && abs(c.Y-t.Y) <= TreeSpacing {
				near = true
				break
			}
		}
		if near {
			continue
		}
		trees = append(trees, c)
		blocked.Add(c)
	}
	return trees
}
