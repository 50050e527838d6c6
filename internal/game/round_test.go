package game

import (
	"testing"

	"github.com/sanity-io/litter"
)

func TestSpawnPoints(t *testing.T) {
	one := SpawnPoints(DefaultGrid, 1)
	if len(one) != 1 || one[0].Cell != DefaultGrid.Centre() || one[0].Dir != Right {
		t.Errorf("one player: %s", litter.Sdump(one))
	}
	two := SpawnPoints(DefaultGrid, 2)
	want := []Spawn{{Cell{3, 3}, Right}, {Cell{GridW - 4, GridH - 4}, Left}}
	if len(two) != 2 || two[0] != want[0] || two[1] != want[1] {
		t.Errorf("two players: %s", litter.Sdump(two))
	}
}

func TestNewRoundPlacesOneNormalFood(t *testing.T) {
	var w Wallets
	r := NewRound(RoundConfig{Tier: DiffInsane, Players: 2}, &w, NewRand(42))
	if len(r.Foods) != 1 || r.Foods[0].Kind != FoodNormal {
		t.Fatalf("foods: %s", litter.Sdump(r.Foods))
	}
	if r.Grid != DefaultGrid || r.TickRate != Difficulties[DiffInsane].StartRate {
		t.Errorf("round: grid=%v rate=%d", r.Grid, r.TickRate)
	}
	for _, p := range r.Players {
		if p.Wallet != &w[p.Index] {
			t.Errorf("player %d wallet not shared", p.Index)
		}
		for _, c := range p.Snake.Body {
			if r.Ruins.Has(c) {
				t.Errorf("player %d spawned on a ruin at %v", p.Index, c)
			}
		}
	}
}

func TestRoundDeterministic(t *testing.T) {
	run := func() View {
		s := NewGameSession(SessionConfig{Seed: 99, Players: 2, Tier: DiffInsane}, &memStore{})
		s.Start()
		for i := 0; i < 40; i++ {
			s.Tick()
		}
		v := s.View()
		v.RoundID = ""
		return v
	}
	a, b := run(), run()
	if litter.Sdump(a) != litter.Sdump(b) {
		t.Fatalf("same seed diverged:\n%s\n%s", litter.Sdump(a), litter.Sdump(b))
	}
}

func TestHeadOnIsDraw(t *testing.T) {
	r, _ := newTestRound(t, 2)
	r.Players[0].Snake.Reset(Cell{10, 10}, Right)
	r.Players[1].Snake.Reset(Cell{12, 10}, Left)
	r.Step()
	if r.Players[0].Snake.Alive || r.Players[1].Snake.Alive {
		t.Fatalf("both snakes should die: %s", litter.Sdump(r.Players))
	}
	if !r.Over || r.Outcome != OutcomeDraw {
		t.Fatalf("outcome %v over=%v", r.Outcome, r.Over)
	}
	if r.Message() != "Both died! Draw!" {
		t.Errorf("message %q", r.Message())
	}
	if n := countEvents(r.drainEvents(), EventSnakeDied); n != 2 {
		t.Errorf("expected 2 death events, got %d", n)
	}
}

func TestHeadOnInvincibleSurvives(t *testing.T) {
	r, _ := newTestRound(t, 2)
	r.Players[0].Snake.Reset(Cell{10, 10}, Right)
	r.Players[0].Snake.Invincible = 10
	r.Players[1].Snake.Reset(Cell{12, 10}, Left)
	r.Step()
	if !r.Players[0].Snake.Alive || r.Players[1].Snake.Alive {
		t.Fatalf("only player 2 should die: %s", litter.Sdump(r.Players))
	}
	if r.Outcome != OutcomeP1Wins || r.Message() != "Player 1 wins the round!" {
		t.Errorf("outcome %v", r.Outcome)
	}
}

func TestWallIsAlwaysLethal(t *testing.T) {
	r, _ := newTestRound(t, 1)
	s := r.Players[0].Snake
	s.Reset(Cell{r.Grid.W - 1, 5}, Right)
	s.Invincible = InvincibleTime
	r.Players[0].Score = 12
	r.Step()
	if s.Alive {
		t.Fatal("invincible snake survived the wall")
	}
	if r.Outcome != OutcomeGameOver || r.Message() != "Game Over! Score: 12" {
		t.Errorf("outcome %v message %q", r.Outcome, r.Message())
	}
}

func TestRuinCollision(t *testing.T) {
	r, _ := newTestRound(t, 1)
	s := r.Players[0].Snake
	s.Reset(Cell{10, 10}, Right)
	r.Ruins.Add(Cell{11, 10})
	s.Invincible = 5
	r.Step()
	if !s.Alive {
		t.Fatal("invincible snake died on a ruin")
	}

	s.Reset(Cell{10, 12}, Right)
	r.Ruins.Add(Cell{11, 12})
	r.Step()
	if s.Alive {
		t.Fatal("snake passed through a ruin")
	}
}

func TestBodyEntry(t *testing.T) {
	setup := func(t *testing.T, victimInvincible bool) *Round {
		r, _ := newTestRound(t, 2)
		// Player 2 heads right along row 10; player 1 drops onto its tail.
		r.Players[1].Snake.Reset(Cell{12, 10}, Right)
		r.Players[0].Snake.Reset(Cell{11, 9}, Down)
		if victimInvincible {
			r.Players[1].Snake.Invincible = 10
		}
		r.Step()
		return r
	}

	t.Run("both die", func(t *testing.T) {
		r := setup(t, false)
		if r.Players[0].Snake.Alive || r.Players[1].Snake.Alive {
			t.Fatalf("expected both dead: %s", litter.Sdump(r.Players))
		}
		if r.Outcome != OutcomeDraw {
			t.Errorf("outcome %v", r.Outcome)
		}
	})
	t.Run("invincible victim survives", func(t *testing.T) {
		r := setup(t, true)
		if r.Players[0].Snake.Alive || !r.Players[1].Snake.Alive {
			t.Fatalf("expected only the entrant dead: %s", litter.Sdump(r.Players))
		}
		if r.Outcome != OutcomeP2Wins || r.Message() != "Player 2 wins the round!" {
			t.Errorf("outcome %v", r.Outcome)
		}
	})
}

func TestEatFood(t *testing.T) {
	r, _ := newTestRound(t, 1)
	p := r.Players[0]
	p.Snake.Reset(Cell{10, 10}, Right)
	r.Foods = []Food{{Kind: FoodInvincible, Pos: Cell{11, 10}}, {Kind: FoodNormal, Pos: Cell{30, 20}}}
	r.Step()
	if p.Snake.Invincible != InvincibleTime {
		t.Errorf("invincible=%d", p.Snake.Invincible)
	}
	if p.Snake.GrowPending != 1 || p.Score != 0 {
		t.Errorf("grow=%d score=%d", p.Snake.GrowPending, p.Score)
	}

	r.Foods = []Food{{Kind: FoodMega, Pos: Cell{12, 10}}}
	r.Step()
	if p.Score != 100 {
		t.Errorf("mega gave %d points", p.Score)
	}
	normals := 0
	for _, f := range r.Foods {
		if f.Kind == FoodNormal {
			normals++
		}
	}
	if normals != 1 {
		t.Errorf("expected a replacement normal food: %s", litter.Sdump(r.Foods))
	}
}

func TestFoodExpires(t *testing.T) {
	r, _ := newTestRound(t, 1)
	r.Foods = []Food{{Kind: FoodBonus, Pos: Cell{1, 1}, Age: BonusFoodLifetime - 1}, {Kind: FoodNormal, Pos: Cell{2, 1}, Age: 10000}}
	r.pickupFood()
	if len(r.Foods) != 1 || r.Foods[0].Kind != FoodNormal {
		t.Errorf("foods: %s", litter.Sdump(r.Foods))
	}
}

func TestPickupMoney(t *testing.T) {
	r, w := newTestRound(t, 1)
	r.Players[0].Snake.Reset(Cell{10, 10}, Right)
	r.Coins = []Coin{{Pos: Cell{11, 10}}}
	r.Bills = []Bill{{Pos: Cell{12, 10}}}
	r.Step()
	if w[0].Coins != 1 || len(r.Coins) > 0 && r.Coins[0].Pos == (Cell{11, 10}) {
		t.Fatalf("coin not collected: wallet=%s coins=%s", litter.Sdump(w[0]), litter.Sdump(r.Coins))
	}
	r.Step()
	if w[0].Coins != 1+BillValue {
		t.Fatalf("bill not collected: %s", litter.Sdump(w[0]))
	}
	if !r.walletDirty {
		t.Error("wallet change not flagged")
	}
}

func TestTickRateFollowsScore(t *testing.T) {
	d := Difficulties[DiffNormal]
	cases := []struct{ score, want int }{
		{-3, 8}, {0, 8}, {4, 8}, {5, 9}, {50, 18}, {1000, 26},
	}
	for _, c := range cases {
		if got := d.TickRate(c.score); got != c.want {
			t.Errorf("TickRate(%d) = %d, want %d", c.score, got, c.want)
		}
	}

	r, _ := newTestRound(t, 2)
	r.Players[0].Score = 7
	r.Players[1].Score = 8
	r.Step()
	if r.TickRate != d.TickRate(r.CombinedScore()) || r.TickRate < 11 {
		t.Errorf("round rate %d for combined %d", r.TickRate, r.CombinedScore())
	}
}

func TestStepAfterOverIsNoop(t *testing.T) {
	r, _ := newTestRound(t, 1)
	r.Over = true
	r.Step()
	if r.Tick != 0 {
		t.Errorf("tick advanced to %d", r.Tick)
	}
}

func TestPickFreeFullGrid(t *testing.T) {
	r, _ := newTestRound(t, 1)
	occ := make(CellSet)
	for x := 0; x < r.Grid.W; x++ {
		for y := 0; y < r.Grid.H; y++ {
			occ.Add(Cell{x, y})
		}
	}
	if _, ok := r.pickFree(occ); ok {
		t.Fatal("picked a cell on a full grid")
	}
	occ.Remove(Cell{4, 7})
	if c, ok := r.pickFree(occ); !ok || c != (Cell{4, 7}) {
		t.Fatalf("got %v %v", c, ok)
	}
}
