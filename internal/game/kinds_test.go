package game

import "testing"

func TestSnakeKindIDsRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for k := SnakeKind(0); k < snakeKindCount; k++ {
		id := k.ID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		back, ok := ParseSnakeKind(id)
		if !ok || back != k {
			t.Errorf("ParseSnakeKind(%q) = %v, %v", id, back, ok)
		}
	}
	if SnakeKindCount != 20 {
		t.Errorf("%d kinds", SnakeKindCount)
	}
	if k, ok := ParseSnakeKind("unicorn"); ok || k != SnakeNormal {
		t.Errorf("unknown kind parsed as %v", k)
	}
}

func TestSnakeKindCycleWraps(t *testing.T) {
	last := SnakeKind(SnakeKindCount - 1)
	if last.Cycle(1) != SnakeNormal || SnakeNormal.Cycle(-1) != last {
		t.Error("cycle does not wrap")
	}
	if SnakeNormal.Cycle(SnakeKindCount) != SnakeNormal {
		t.Error("full cycle")
	}
}

func TestSnakeKindColorsPerPlayer(t *testing.T) {
	if SnakeNormal.Colors(0) == SnakeNormal.Colors(1) {
		t.Error("players share colours")
	}
	if SnakeKind(99).Colors(0) != SnakeNormal.Colors(0) {
		t.Error("invalid kind should fall back to normal")
	}
}

func TestEventBus(t *testing.T) {
	eb := NewEventBus()
	var shots, all int
	eb.Subscribe(EventShot, func(Event) { shots++ })
	eb.SubscribeAll(func(Event) { all++ })
	eb.Emit(Event{Type: EventShot})
	eb.Emit(Event{Type: EventVacuum})
	if shots != 1 || all != 2 {
		t.Errorf("shots=%d all=%d", shots, all)
	}
}

func TestHash2DStable(t *testing.T) {
	if Hash2D(1, 3, 4) != Hash2D(1, 3, 4) {
		t.Fatal("hash not deterministic")
	}
	if Hash2D(1, 3, 4) == Hash2D(1, 4, 3) || Hash2D(1, 3, 4) == Hash2D(2, 3, 4) {
		t.Error("hash collisions on trivial inputs")
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 1000; i++ {
		if v := r.Range(-2, 3); v < -2 || v > 3 {
			t.Fatalf("Range gave %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 gave %v", f)
		}
	}
	if r.Intn(0) != 0 || r.Range(5, 5) != 5 {
		t.Error("degenerate ranges")
	}
}
