package game

import (
	"testing"

	"github.com/sanity-io/litter"
)

func TestEnemyStepGreedy(t *testing.T) {
	g := DefaultGrid
	none := make(CellSet)
	cases := []struct {
		name   string
		target Cell
		ruins  CellSet
		others CellSet
		want   Cell
		facing Direction
	}{
		{"major axis first", Cell{10, 6}, none, none, Cell{6, 5}, Right},
		{"vertical major axis", Cell{6, 12}, none, none, Cell{5, 6}, Down},
		{"ruin forces minor axis", Cell{10, 6}, NewCellSet(Cell{6, 5}), none, Cell{5, 6}, Down},
		{"other dogs block", Cell{10, 6}, NewCellSet(Cell{5, 6}), NewCellSet(Cell{6, 5}), Cell{4, 5}, Left},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Enemy{Pos: Cell{5, 5}, Alive: true}
			e.Step(c.target, g, c.ruins, c.others, NewRand(1))
			if e.Pos != c.want || e.Facing != c.facing {
				t.Errorf("got %s, want %v facing %v", litter.Sdump(e), c.want, c.facing)
			}
			if e.MoveCD != EnemyMoveInterval {
				t.Errorf("cooldown %d", e.MoveCD)
			}
		})
	}
}

func TestEnemyStepCooldown(t *testing.T) {
	e := Enemy{Pos: Cell{5, 5}, Alive: true}
	target := Cell{20, 5}
	none := make(CellSet)
	positions := []int{}
	for i := 0; i < 2*EnemyMoveInterval; i++ {
		e.Step(target, DefaultGrid, none, none, NewRand(1))
		positions = append(positions, e.Pos.X)
	}
	want := []int{6, 6, 6, 7, 7, 7}
	if litter.Sdump(positions) != litter.Sdump(want) {
		t.Errorf("x positions %v, want %v", positions, want)
	}
}

func TestEnemyBlockedFallback(t *testing.T) {
	around := NewCellSet(Cell{6, 5}, Cell{4, 5}, Cell{5, 6}, Cell{5, 4})

	// Surrounded by dogs only: it still moves onto one of them.
	e := Enemy{Pos: Cell{5, 5}, Alive: true}
	e.Step(Cell{10, 6}, DefaultGrid, make(CellSet), around, NewRand(3))
	if !around.Has(e.Pos) {
		t.Errorf("fallback moved to %v", e.Pos)
	}

	// Surrounded by ruins: it stays put.
	e = Enemy{Pos: Cell{5, 5}, Alive: true}
	e.Step(Cell{10, 6}, DefaultGrid, around, make(CellSet), NewRand(3))
	if e.Pos != (Cell{5, 5}) {
		t.Errorf("walled-in dog moved to %v", e.Pos)
	}
}

func hardRound(t *testing.T) *Round {
	t.Helper()
	r, _ := newTestRound(t, 1)
	r.Difficulty = Difficulties[DiffHard]
	r.enemyCD = 1000
	return r
}

func TestEnemyBitesSnake(t *testing.T) {
	r := hardRound(t)
	s := r.Players[0].Snake
	s.Reset(Cell{25, 15}, Right)
	r.Enemies = []Enemy{{Pos: Cell{26, 15}, Alive: true}}
	r.updateEnemies()
	if s.Alive {
		t.Fatal("snake survived the dog")
	}
	if len(r.Enemies) != 0 {
		t.Errorf("dog should be removed: %s", litter.Sdump(r.Enemies))
	}
}

func TestEnemyVsInvincibleSnake(t *testing.T) {
	r := hardRound(t)
	s := r.Players[0].Snake
	s.Reset(Cell{25, 15}, Right)
	s.Invincible = 10
	r.Enemies = []Enemy{{Pos: Cell{26, 15}, Alive: true}}
	r.updateEnemies()
	if !s.Alive || len(r.Enemies) != 0 {
		t.Fatalf("alive=%v enemies=%s", s.Alive, litter.Sdump(r.Enemies))
	}
}

func TestEnemiesDoNotStack(t *testing.T) {
	r := hardRound(t)
	r.Players[0].Snake.Reset(Cell{25, 15}, Right)
	r.Enemies = []Enemy{
		{Pos: Cell{10, 15}, Alive: true},
		{Pos: Cell{11, 15}, Alive: true, MoveCD: 100},
	}
	r.updateEnemies()
	if r.Enemies[0].Pos == r.Enemies[1].Pos {
		t.Fatalf("dogs share a cell: %s", litter.Sdump(r.Enemies))
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	r := hardRound(t)
	head := r.Players[0].Snake.Head()
	r.Enemies = []Enemy{{Pos: head.Add(Right).Add(Right), Alive: true, MoveCD: 100}}
	r.Bullets = []Bullet{{Pos: head, Dir: Right, Owner: 0, Alive: true}}
	r.advanceBullets()
	if r.Enemies[0].Alive || len(r.Bullets) != 0 {
		t.Fatalf("enemies=%s bullets=%s", litter.Sdump(r.Enemies), litter.Sdump(r.Bullets))
	}
	if countEvents(r.drainEvents(), EventEnemyKilled) != 1 {
		t.Error("missing kill event")
	}
	r.updateEnemies()
	if len(r.Enemies) != 0 {
		t.Error("dead dog not removed")
	}
}

func TestSpawnEnemyOnFreeEdge(t *testing.T) {
	r := hardRound(t)
	for i := 0; i < 10; i++ {
		if !r.spawnEnemy() {
			t.Fatal("spawn failed")
		}
	}
	seen := make(CellSet)
	for _, e := range r.Enemies {
		if !r.Grid.OnEdge(e.Pos) || seen.Has(e.Pos) {
			t.Fatalf("bad spawn: %s", litter.Sdump(r.Enemies))
		}
		seen.Add(e.Pos)
	}
}

func TestEnemySpawnRespectsCap(t *testing.T) {
	r := hardRound(t)
	limit := r.Difficulty.MaxEnemies
	for i := 0; i < limit+5; i++ {
		r.enemyCD = 0
		// Freeze the dogs so none reach the snake.
		for j := range r.Enemies {
			r.Enemies[j].MoveCD = 100
		}
		r.updateEnemies()
	}
	if len(r.Enemies) != limit {
		t.Errorf("%d dogs, cap %d", len(r.Enemies), limit)
	}
}

func TestNoEnemiesOnEasyTiers(t *testing.T) {
	for _, tier := range []int{DiffEasy, DiffNormal} {
		if Difficulties[tier].HasEnemies() {
			t.Errorf("%s has enemies", Difficulties[tier].Name)
		}
	}
	for _, tier := range []int{DiffHard, DiffInsane} {
		if !Difficulties[tier].HasEnemies() {
			t.Errorf("%s has no enemies", Difficulties[tier].Name)
		}
	}
}
