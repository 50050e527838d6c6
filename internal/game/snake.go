package game

// Snake is one player's body on the grid, head first.
type Snake struct {
	Body        []Cell
	Dir         Direction
	NextDir     Direction
	GrowPending int
	Invincible  int // ticks remaining
	Alive       bool
	Kind        SnakeKind
	Colors      SnakeColors
}

// NewSnake places a snake of StartLength cells with its head at start,
// trailing away from dir.
func NewSnake(start Cell, dir Direction, kind SnakeKind, player int) *Snake {
	s := &Snake{Kind: kind, Colors: kind.Colors(player)}
	s.Reset(start, dir)
	return s
}

func (s *Snake) Reset(start Cell, dir Direction) {
	back := dir.Opposite()
	s.Body = s.Body[:0]
	c := start
	for i := 0; i < StartLength; i++ {
		s.Body = append(s.Body, c)
		c = c.Add(back)
	}
	s.Dir = dir
	s.NextDir = dir
	s.GrowPending = 0
	s.Invincible = 0
	s.Alive = true
}

func (s *Snake) Head() Cell { return s.Body[0] }

func (s *Snake) Len() int { return len(s.Body) }

// SetDirection buffers a turn for the next move. An exact reversal of the
// current heading is rejected.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.Dir.Opposite() {
		return false
	}
	s.NextDir = d
	return true
}

// Move advances the snake one cell. Dead snakes stay put.
func (s *Snake) Move() {
	if !s.Alive {
		return
	}
	s.Dir = s.NextDir
	head := s.Head().Add(s.Dir)
	s.Body = append(s.Body, Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head
	if s.GrowPending > 0 {
		s.GrowPending--
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
	if s.Invincible > 0 {
		s.Invincible--
	}
}

func (s *Snake) Grow(n int) { s.GrowPending += n }

func (s *Snake) IsInvincible() bool { return s.Invincible > 0 }

// Occupies reports whether any body cell is c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps the rest of the body.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, b := range s.Body[1:] {
		if b == head {
			return true
		}
	}
	return false
}
