package game

import "sort"

// Cell is an integer grid coordinate.
type Cell struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cardinals lists the four directions in firing order.
var Cardinals = [4]Direction{Up, Down, Left, Right}

func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Grid is the playfield rectangle [0,W)×[0,H).
type Grid struct {
	W, H int
}

// DefaultGrid is the standard playfield.
var DefaultGrid = Grid{W: GridW, H: GridH}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

func (g Grid) Centre() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// OnEdge reports whether c is a border cell.
func (g Grid) OnEdge(c Cell) bool {
	return g.Contains(c) && (c.X == 0 || c.Y == 0 || c.X == g.W-1 || c.Y == g.H-1)
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Add(c Cell) { s[c] = struct{}{} }

func (s CellSet) Remove(c Cell) { delete(s, c) }

// Sorted returns the cells ordered by column then row, so callers that
// iterate can stay deterministic.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
