package game

// Enemy is a dog that chases the nearest snake head.
type Enemy struct {
	Pos    Cell
	Facing Direction
	MoveCD int
	Alive  bool
}

type step struct{ dx, dy int }

func (s step) dir() Direction {
	switch {
	case s.dx > 0:
		return Right
	case s.dx < 0:
		return Left
	case s.dy > 0:
		return Down
	}
	return Up
}

// Step moves the enemy one cell toward target every EnemyMoveInterval
// calls. The larger axis is tried first, then the smaller one, then the
// reverse of each; ruins and other enemies block. If every candidate is
// blocked the candidates are shuffled and the first one clear of ruins is
// taken.
func (e *Enemy) Step(target Cell, g Grid, ruins, others CellSet, rng *Rand) {
	e.MoveCD--
	if e.MoveCD > 0 {
		return
	}
	e.MoveCD = EnemyMoveInterval

	dx := sign(target.X - e.Pos.X)
	dy := sign(target.Y - e.Pos.Y)
	var moves [4]step
	if abs(target.X-e.Pos.X) >= abs(target.Y-e.Pos.Y) {
		moves = [4]step{{dx, 0}, {0, dy}, {-dx, 0}, {0, -dy}}
	} else {
		moves = [4]step{{0, dy}, {dx, 0}, {0, -dy}, {-dx, 0}}
	}

	try := func(m step, avoidOthers bool) bool {
		if m.dx == 0 && m.dy == 0 {
			return false
		}
		next := Cell{X: e.Pos.X + m.dx, Y: e.Pos.Y + m.dy}
		if !g.Contains(next) || ruins.Has(next) {
			return false
		}
		if avoidOthers && others.Has(next) {
			return false
		}
		e.Pos = next
		e.Facing = m.dir()
		return true
	}
	for _, m := range moves {
		if try(m, true) {
			return
		}
	}
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	for _, m := range moves {
		if try(m, false) {
			return
		}
	}
}

func (r *Round) updateEnemies() {
	r.enemyCD--
	if r.enemyCD <= 0 {
		r.enemyCD = r.Difficulty.EnemySpawnInterval
		if len(r.Enemies) < r.Difficulty.MaxEnemies {
			r.spawnEnemy()
		}
	}

	taken := make(CellSet, len(r.Enemies))
	for i := range r.Enemies {
		taken.Add(r.Enemies[i].Pos)
	}
	for i := range r.Enemies {
		e := &r.Enemies[i]
		if !e.Alive {
			continue
		}
		target, ok := r.nearestHead(e.Pos)
		if !ok {
			continue
		}
		taken.Remove(e.Pos)
		e.Step(target, r.Grid, r.Ruins, taken, r.rng)
		taken.Add(e.Pos)
	}

	for i := range r.Enemies {
		e := &r.Enemies[i]
		if !e.Alive {
			continue
		}
		for j := range r.Bullets {
			b := &r.Bullets[j]
			if b.Alive && b.Pos == e.Pos {
				e.Alive = false
				b.Alive = false
				r.emit(Event{Type: EventEnemyKilled, Pos: e.Pos, Player: b.Owner})
				break
			}
		}
	}
	r.Bullets = compact(r.Bullets, func(b *Bullet) bool { return b.Alive })

	for i := range r.Enemies {
		e := &r.Enemies[i]
		if !e.Alive {
			continue
		}
		for _, p := range r.Players {
			if !p.Snake.Alive || p.Snake.Head() != e.Pos {
				continue
			}
			if !p.Snake.IsInvincible() {
				r.kill(p)
			}
			e.Alive = false
		}
	}
	r.Enemies = compact(r.Enemies, func(e *Enemy) bool { return e.Alive })
}

func (r *Round) nearestHead(from Cell) (Cell, bool) {
	best, bestD, found := Cell{}, 0, false
	for _, p := range r.Players {
		if !p.Snake.Alive {
			continue
		}
		h := p.Snake.Head()
		if d := h.Manhattan(from); !found || d < bestD {
			best, bestD, found = h, d, true
		}
	}
	return best, found
}

// spawnEnemy places a dog on a free border cell.
func (r *Round) spawnEnemy() bool {
	occ := r.occupied()
	for i := range r.Enemies {
		occ.Add(r.Enemies[i].Pos)
	}
	var free []Cell
	for x := 0; x < r.Grid.W; x++ {
		for y := 0; y < r.Grid.H; y++ {
			c := Cell{x, y}
			if r.Grid.OnEdge(c) && !occ.Has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	c := free[r.rng.Intn(len(free))]
	r.Enemies = append(r.Enemies, Enemy{Pos: c, Facing: Cardinals[r.rng.Intn(len(Cardinals))], Alive: true})
	r.emit(Event{Type: EventEnemySpawned, Pos: c, Player: -1})
	return true
}
