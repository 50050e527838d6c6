package game

// resolveCollisions applies wall, self and ruin checks to each snake and
// then the snake-versus-snake rule. Leaving the grid is lethal even while
// invincible.
func (r *Round) resolveCollisions() {
	for _, p := range r.Players {
		s := p.Snake
		if !s.Alive {
			continue
		}
		switch {
		case !r.Grid.Contains(s.Head()):
			r.kill(p)
		case s.HitsSelf() && !s.IsInvincible():
			r.kill(p)
		case r.Ruins.Has(s.Head()) && !s.IsInvincible():
			r.kill(p)
		}
	}
	if len(r.Players) == 2 {
		r.resolveSnakes(r.Players[0], r.Players[1])
	}
}

// resolveSnakes handles two live snakes touching. Head-on kills each
// vulnerable snake. Otherwise a vulnerable snake whose head enters the
// other's body dies and takes the other with it unless that one is
// invincible.
func (r *Round) resolveSnakes(a, b *Player) {
	sa, sb := a.Snake, b.Snake
	if !sa.Alive || !sb.Alive {
		return
	}
	if sa.Head() == sb.Head() {
		if !sa.IsInvincible() {
			r.kill(a)
		}
		if !sb.IsInvincible() {
			r.kill(b)
		}
		return
	}
	aHitsB := sb.Occupies(sa.Head())
	bHitsA := sa.Occupies(sb.Head())
	if aHitsB && !sa.IsInvincible() {
		r.kill(a)
		if !sb.IsInvincible() {
			r.kill(b)
		}
	}
	if bHitsA && !sb.IsInvincible() {
		r.kill(b)
		if !sa.IsInvincible() {
			r.kill(a)
		}
	}
}
