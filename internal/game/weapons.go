package game

// GunKind is the gun a player owns. GunNone means unarmed.
type GunKind int

const (
	GunNone   GunKind = iota
	GunBasic          // one forward shot per press
	GunAuto           // forward shots while held
	GunQuad           // four cardinal shots per press
	GunVacuum         // pulls items toward the head, no projectile
)

// Guns lists the purchasable guns in shop order.
var Guns = [...]GunKind{GunBasic, GunAuto, GunQuad, GunVacuum}

func (g GunKind) Price() int {
	switch g {
	case GunBasic:
		return 10
	case GunAuto:
		return 15
	case GunQuad:
		return 25
	case GunVacuum:
		return 50
	}
	return 0
}

// ID is the persisted identifier; empty for GunNone.
func (g GunKind) ID() string {
	switch g {
	case GunBasic:
		return "basic"
	case GunAuto:
		return "auto"
	case GunQuad:
		return "quad"
	case GunVacuum:
		return "vacuum"
	}
	return ""
}

func (g GunKind) String() string {
	switch g {
	case GunBasic:
		return "Cannon"
	case GunAuto:
		return "Auto-cannon"
	case GunQuad:
		return "Quad-cannon"
	case GunVacuum:
		return "Vacuum"
	}
	return "None"
}

// ParseGunKind maps a persisted id to a gun. Unknown ids give GunNone.
func ParseGunKind(id string) (GunKind, bool) {
	for _, g := range Guns {
		if g.ID() == id {
			return g, true
		}
	}
	return GunNone, id == ""
}

// Bullet advances BulletSpeed cells per tick.
type Bullet struct {
	Pos   Cell
	Dir   Direction
	Owner int
	Gun   GunKind
	Alive bool
}

// fire discharges the player's gun. It spends one ammo per discharge,
// whatever the bullet count.
func (r *Round) fire(p *Player) bool {
	w := p.Wallet
	if w.Gun == GunNone || w.Gun == GunVacuum {
		return false
	}
	if w.Ammo <= 0 || !p.Snake.Alive {
		return false
	}
	w.Ammo--
	r.walletDirty = true
	head := p.Snake.Head()
	if w.Gun == GunQuad {
		for _, d := range Cardinals {
			r.Bullets = append(r.Bullets, Bullet{Pos: head, Dir: d, Owner: p.Index, Gun: w.Gun, Alive: true})
		}
	} else {
		r.Bullets = append(r.Bullets, Bullet{Pos: head, Dir: p.Snake.Dir, Owner: p.Index, Gun: w.Gun, Alive: true})
	}
	r.emit(Event{Type: EventShot, Pos: head, Player: p.Index, Data: int(w.Gun)})
	return true
}

// updateGuns runs edge-triggered presses, held auto fire and the vacuum.
func (r *Round) updateGuns() {
	for _, p := range r.Players {
		pressed := p.firePressed
		p.firePressed = false

		switch p.Wallet.Gun {
		case GunBasic, GunQuad:
			if pressed {
				r.fire(p)
			}
		case GunAuto:
			if p.fireHeld {
				p.autoCD--
				if p.autoCD <= 0 {
					r.fire(p)
					p.autoCD = AutoShootInterval
				}
			} else {
				p.autoCD = 0
			}
		}

		if p.Wallet.Gun != GunVacuum {
			p.VacuumActive = false
			continue
		}
		if p.fireHeld && p.Wallet.Power > 0 {
			p.VacuumActive = true
			p.vacuumCD--
			if p.vacuumCD <= 0 {
				p.Wallet.Power--
				r.walletDirty = true
				r.vacuum(p)
				p.vacuumCD = VacuumInterval
			}
		} else {
			p.VacuumActive = false
			p.vacuumCD = 0
		}
	}
}

// vacuum pulls every item within VacuumRange one step toward the head on
// each axis. Blocked items stay where they are.
func (r *Round) vacuum(p *Player) {
	if !p.Snake.Alive {
		return
	}
	head := p.Snake.Head()
	blocked := make(CellSet)
	for _, pl := range r.Players {
		if pl.Snake.Alive {
			for _, c := range pl.Snake.Body {
				blocked.Add(c)
			}
		}
	}
	for c := range r.Ruins {
		blocked.Add(c)
	}
	for i := range r.Foods {
		blocked.Add(r.Foods[i].Pos)
	}
	for i := range r.Coins {
		blocked.Add(r.Coins[i].Pos)
	}
	for i := range r.Bills {
		blocked.Add(r.Bills[i].Pos)
	}

	pull := func(pos *Cell) {
		d := pos.Manhattan(head)
		if d == 0 || d > VacuumRange {
			return
		}
		next := Cell{X: pos.X + sign(head.X-pos.X), Y: pos.Y + sign(head.Y-pos.Y)}
		if !r.Grid.Contains(next) || blocked.Has(next) {
			return
		}
		blocked.Remove(*pos)
		blocked.Add(next)
		*pos = next
	}
	for i := range r.Foods {
		pull(&r.Foods[i].Pos)
	}
	for i := range r.Coins {
		pull(&r.Coins[i].Pos)
	}
	for i := range r.Bills {
		pull(&r.Bills[i].Pos)
	}
	r.emit(Event{Type: EventVacuum, Pos: head, Player: p.Index})
}

// advanceBullets moves every bullet BulletSpeed cells, resolving hits after
// each cell.
func (r *Round) advanceBullets() {
	for i := range r.Bullets {
		b := &r.Bullets[i]
		for step := 0; step < BulletSpeed && b.Alive; step++ {
			b.Pos = b.Pos.Add(b.Dir)
			r.resolveBullet(b)
		}
	}
	r.Bullets = compact(r.Bullets, func(b *Bullet) bool { return b.Alive })
}

func (r *Round) resolveBullet(b *Bullet) {
	if !r.Grid.Contains(b.Pos) {
		b.Alive = false
		return
	}
	if r.Ruins.Has(b.Pos) {
		r.Ruins.Remove(b.Pos)
		b.Alive = false
		r.emit(Event{Type: EventRuinDestroyed, Pos: b.Pos, Player: b.Owner})
		return
	}
	for _, p := range r.Players {
		if p.Index == b.Owner || !p.Snake.Alive || !p.Snake.Occupies(b.Pos) {
			continue
		}
		if !p.Snake.IsInvincible() {
			r.kill(p)
		}
		b.Alive = false
		return
	}
	for j := range r.Enemies {
		e := &r.Enemies[j]
		if e.Alive && e.Pos == b.Pos {
			e.Alive = false
			b.Alive = false
			r.emit(Event{Type: EventEnemyKilled, Pos: e.Pos, Player: b.Owner})
			return
		}
	}
}
