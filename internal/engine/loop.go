// Package engine drives a simulation at a variable fixed-step rate and
// renders once per frame.
package engine

import (
	"context"
	"time"
)

// Sim is stepped by the Runner. TickRate is read again before every step.
type Sim interface {
	Tick()
	TickRate() int
}

// Host feeds input and draws. Poll returning false stops the loop.
type Host interface {
	Poll() bool
	Render()
}

const (
	DefaultFrameInterval = time.Second / 60
	DefaultMaxCatchUp    = 8
)

type Runner struct {
	Sim  Sim
	Host Host

	FrameInterval time.Duration
	MaxCatchUp    int // ticks per frame before the backlog is dropped

	// AfterTicks runs once per frame in which at least one tick ran.
	AfterTicks func()

	now   func() time.Time
	sleep func(time.Duration)
}

func NewRunner(sim Sim, host Host) *Runner {
	return &Runner{
		Sim:           sim,
		Host:          host,
		FrameInterval: DefaultFrameInterval,
		MaxCatchUp:    DefaultMaxCatchUp,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

func stepFor(rate int) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}

// Run loops until the host stops or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	last := r.now()
	var acc time.Duration
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		frameStart := r.now()
		if !r.Host.Poll() {
			return nil
		}

		now := r.now()
		acc += now.Sub(last)
		last = now

		ticks := 0
		for step := stepFor(r.Sim.TickRate()); acc >= step; step = stepFor(r.Sim.TickRate()) {
			if ticks == r.MaxCatchUp {
				acc = 0
				break
			}
			acc -= step
			r.Sim.Tick()
			ticks++
		}
		if ticks > 0 && r.AfterTicks != nil {
			r.AfterTicks()
		}
		r.Host.Render()

		if wait := r.FrameInterval - r.now().Sub(frameStart); wait > 0 {
			r.sleep(wait)
		}
	}
}
