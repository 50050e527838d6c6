package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) sleep(d time.Duration)   { c.t = c.t.Add(d) }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeSim struct {
	rate  int
	ticks int
}

func (s *fakeSim) Tick()         { s.ticks++ }
func (s *fakeSim) TickRate() int { return s.rate }

type fakeHost struct {
	frames  int
	renders int
	stop    int // Poll returns false on this call
	onPoll  func(frame int)
}

func (h *fakeHost) Poll() bool {
	h.frames++
	if h.onPoll != nil {
		h.onPoll(h.frames)
	}
	return h.frames < h.stop
}

func (h *fakeHost) Render() { h.renders++ }

func newTestRunner(sim Sim, host Host, clk *fakeClock) *Runner {
	r := NewRunner(sim, host)
	r.FrameInterval = 50 * time.Millisecond
	r.now = clk.now
	r.sleep = clk.sleep
	return r
}

func TestRunnerFixedStep(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	sim := &fakeSim{rate: 10}
	host := &fakeHost{stop: 21}
	r := newTestRunner(sim, host, clk)
	after := 0
	r.AfterTicks = func() { after++ }

	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// 20 frames of 50ms is 950ms of accumulated time at 10 ticks/s.
	if sim.ticks != 9 || host.renders != 20 || after != 9 {
		t.Errorf("ticks=%d renders=%d after=%d", sim.ticks, host.renders, after)
	}
}

func TestRunnerDropsBacklog(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	sim := &fakeSim{rate: 10}
	host := &fakeHost{stop: 3}
	host.onPoll = func(frame int) {
		if frame == 2 {
			clk.advance(2 * time.Second)
		}
	}
	r := newTestRunner(sim, host, clk)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if sim.ticks != r.MaxCatchUp {
		t.Errorf("ran %d ticks after a stall, cap is %d", sim.ticks, r.MaxCatchUp)
	}
}

func TestRunnerFollowsRate(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	sim := &fakeSim{rate: 40}
	host := &fakeHost{stop: 11}
	r := newTestRunner(sim, host, clk)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// 450ms elapsed at 25ms per tick.
	if sim.ticks != 18 {
		t.Errorf("ticks=%d", sim.ticks)
	}
}

func TestRunnerStopsOnContext(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	ctx, cancel := context.WithCancel(context.Background())
	host := &fakeHost{stop: 1000}
	host.onPoll = func(frame int) {
		if frame == 3 {
			cancel()
		}
	}
	r := newTestRunner(&fakeSim{rate: 10}, host, clk)
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if host.frames != 3 {
		t.Errorf("polled %d frames", host.frames)
	}
}

func TestStepFor(t *testing.T) {
	if stepFor(0) != time.Second || stepFor(4) != 250*time.Millisecond {
		t.Error("stepFor")
	}
}
