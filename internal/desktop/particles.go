package desktop

import (
	"math"

	"golang.org/x/exp/rand"

	"snakeruins/internal/game"
)

const maxParticles = 2048

type particleKind uint8

const (
	particleDebris particleKind = iota
	particleSpark
	particleBlood
)

// particle positions and velocities are in grid cells.
type particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float32
	Col     game.RGB
	Kind    particleKind
}

// particles is a fixed-capacity pool of cosmetic effects. It runs on frame
// time and draws from its own stream, never the gameplay one.
type particles struct {
	max    int
	p      []particle
	rng    *rand.Rand
	ovrIdx int // circular overwrite index when full
}

func newParticles(max int, seed uint64) *particles {
	return &particles{
		max: max,
		p:   make([]particle, 0, max),
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (ps *particles) add(p particle) {
	if len(ps.p) < ps.max {
		ps.p = append(ps.p, p)
		return
	}
	if ps.ovrIdx >= ps.max {
		ps.ovrIdx = 0
	}
	ps.p[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *particles) rangeF(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

func (ps *particles) jitter(n int) int {
	return ps.rng.Intn(2*n+1) - n
}

// burst scatters count particles from the centre of cell c.
func (ps *particles) burst(kind particleKind, c game.Cell, col game.RGB, count int, speed float64) {
	for range count {
		ang := ps.rangeF(0, 2*math.Pi)
		spd := ps.rangeF(0.3, 1) * speed
		ps.add(particle{
			X:       float64(c.X) + ps.rangeF(-0.3, 0.3),
			Y:       float64(c.Y) + ps.rangeF(-0.3, 0.3),
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			MaxLife: ps.rangeF(0.25, 0.7),
			Size:    float32(ps.rangeF(0.15, 0.35)),
			Col:     col.Add(ps.jitter(14), ps.jitter(14), ps.jitter(14)),
			Kind:    kind,
		})
	}
}

// attach spawns effects for session events.
func (ps *particles) attach(bus *game.EventBus) {
	bus.Subscribe(game.EventRuinDestroyed, func(e game.Event) {
		ps.burst(particleDebris, e.Pos, game.Palette.Ruin, 24, 9)
	})
	bus.Subscribe(game.EventSnakeDied, func(e game.Event) {
		ps.burst(particleBlood, e.Pos, game.RGB{R: 130, G: 20, B: 20}, 30, 7)
	})
	bus.Subscribe(game.EventEnemyKilled, func(e game.Event) {
		ps.burst(particleBlood, e.Pos, game.Palette.DogDark, 16, 6)
	})
	bus.Subscribe(game.EventCoinPicked, func(e game.Event) {
		ps.burst(particleSpark, e.Pos, game.Palette.Coin, 6+e.Data, 5)
	})
	bus.Subscribe(game.EventFoodEaten, func(e game.Event) {
		ps.burst(particleSpark, e.Pos, game.FoodColor(game.FoodKind(e.Data)), 10, 5)
	})
}

func (ps *particles) update(dt float64) {
	if dt <= 0 {
		return
	}
	// Drag factors for this frame.
	sparkXY := math.Exp(-4 * dt)
	debrisXY := math.Exp(-2.5 * dt)
	bloodXY := math.Exp(-6 * dt)

	for i := 0; i < len(ps.p); {
		p := &ps.p[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.p[i] = ps.p[len(ps.p)-1]
			ps.p = ps.p[:len(ps.p)-1]
			continue
		}
		drag := sparkXY
		switch p.Kind {
		case particleDebris:
			drag = debrisXY
		case particleBlood:
			drag = bloodXY
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= drag
		p.VY *= drag
		i++
	}
	if ps.ovrIdx > len(ps.p) {
		ps.ovrIdx = 0
	}
}

func (ps *particles) draw(r *Renderer) {
	for _, p := range ps.p {
		t := p.Life / p.MaxLife
		a := 1 - t
		shape := shapeCircle
		switch p.Kind {
		case particleDebris:
			shape = shapeSquare
		case particleBlood:
			a = 1 - t*0.5
		}
		r.Cell(float32(p.X), float32(p.Y), p.Size, p.Col, float32(a), shape)
	}
}
