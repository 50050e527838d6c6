package game

import (
	"testing"

	"github.com/sanity-io/litter"
)

func TestGenerateLevelConstraints(t *testing.T) {
	g := DefaultGrid
	safe := SafeZone(g)
	for tier, d := range Difficulties {
		for seed := uint64(1); seed <= 25; seed++ {
			lvl := GenerateLevel(g, d, NewRand(seed))

			if len(lvl.Ruins) == 0 || len(lvl.Ruins) > 5*d.Ruins {
				t.Fatalf("tier %d seed %d: %d ruin cells", tier, seed, len(lvl.Ruins))
			}
			for c := range lvl.Ruins {
				if safe.Has(c) {
					t.Fatalf("tier %d seed %d: ruin in safe zone at %v", tier, seed, c)
				}
				if c.X < 1 || c.X >= g.W-1 || c.Y < 1 || c.Y >= g.H-1 {
					t.Fatalf("tier %d seed %d: ruin on border at %v", tier, seed, c)
				}
			}

			if len(lvl.Trees) > d.Trees {
				t.Fatalf("tier %d seed %d: %d trees", tier, seed, len(lvl.Trees))
			}
			for i, tr := range lvl.Trees {
				if safe.Has(tr) || lvl.Ruins.Has(tr) {
					t.Fatalf("tier %d seed %d: tree on blocked cell %v", tier, seed, tr)
				}
				if tr.X < 1 || tr.X > g.W-2 || tr.Y < 1 || tr.Y > g.H-2 {
					t.Fatalf("tier %d seed %d: tree out of bounds %v", tier, seed, tr)
				}
				for _, o := range lvl.Trees[i+1:] {
					if abs(tr.X-o.X) <= TreeSpacing && abs(tr.Y-o.Y) <= TreeSpacing {
						t.Fatalf("tier %d seed %d: trees %v and %v too close", tier, seed, tr, o)
					}
				}
			}
		}
	}
}

func TestRuinPiecesKeepApart(t *testing.T) {
	g := DefaultGrid
	safe := SafeZone(g)
	for tier, d := range Difficulties {
		for seed := uint64(1); seed <= 200; seed++ {
			pieces := placeRuins(g, d.Ruins, safe, NewRand(seed))
			if len(pieces) == 0 || len(pieces) > d.Ruins {
				t.Fatalf("tier %d seed %d: %d pieces", tier, seed, len(pieces))
			}
			for i := range pieces {
				for j := i + 1; j < len(pieces); j++ {
					for _, a := range pieces[i] {
						for _, b := range pieces[j] {
							if max(abs(a.X-b.X), abs(a.Y-b.Y)) < 2 {
								t.Fatalf("tier %d seed %d: pieces %d and %d touch at %v/%v", tier, seed, i, j, a, b)
							}
						}
					}
				}
			}

			// The level is exactly the union of the pieces.
			lvl := GenerateLevel(g, d, NewRand(seed))
			n := 0
			for _, p := range pieces {
				for _, c := range p {
					if !lvl.Ruins.Has(c) {
						t.Fatalf("tier %d seed %d: piece cell %v missing from level", tier, seed, c)
					}
					n++
				}
			}
			if n != len(lvl.Ruins) {
				t.Fatalf("tier %d seed %d: %d piece cells, %d level ruins", tier, seed, n, len(lvl.Ruins))
			}
		}
	}
}

func TestSpawnsInsideSafeZone(t *testing.T) {
	safe := SafeZone(DefaultGrid)
	for players := 1; players <= MaxPlayers; players++ {
		for _, sp := range SpawnPoints(DefaultGrid, players) {
			s := NewSnake(sp.Cell, sp.Dir, SnakeNormal, 0)
			for _, c := range s.Body {
				if !safe.Has(c) {
					t.Errorf("%d players: spawn cell %v outside the safe zone", players, c)
				}
			}
		}
	}
}

func TestGenerateLevelDeterministic(t *testing.T) {
	d := Difficulties[DiffInsane]
	a := GenerateLevel(DefaultGrid, d, NewRand(1234))
	b := GenerateLevel(DefaultGrid, d, NewRand(1234))
	if litter.Sdump(a.Ruins.Sorted(), a.Trees) != litter.Sdump(b.Ruins.Sorted(), b.Trees) {
		t.Fatal("same seed produced different levels")
	}
}

func TestRuinFits(t *testing.T) {
	g := DefaultGrid
	ruins := NewCellSet(Cell{20, 10})
	safe := SafeZone(g)
	cases := []struct {
		name  string
		cells []Cell
		want  bool
	}{
		{"diagonal neighbour", []Cell{{21, 11}}, false},
		{"overlap", []Cell{{20, 10}, {20, 11}}, false},
		{"two apart", []Cell{{22, 12}, {23, 12}}, true},
		{"border", []Cell{{0, 15}}, false},
		{"safe corner", []Cell{{2, 2}}, false},
	}
	for _, c := range cases {
		if got := ruinFits(g, c.cells, ruins, safe); got != c.want {
			t.Errorf("%s: got %v", c.name, got)
		}
	}
}

func TestRotateQuarter(t *testing.T) {
	got := rotateQuarter([]Cell{{1, 0}, {2, 0}}, 1)
	want := []Cell{{0, 1}, {0, 2}}
	if litter.Sdump(got) != litter.Sdump(want) {
		t.Errorf("got %s", litter.Sdump(got))
	}
	full := rotateQuarter([]Cell{{1, 2}}, 4)
	if full[0] != (Cell{1, 2}) {
		t.Errorf("four turns gave %v", full[0])
	}
}
