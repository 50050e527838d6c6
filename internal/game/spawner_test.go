package game

import (
	"testing"

	"github.com/sanity-io/litter"
)

func TestSpawnerKeepsOneNormalFood(t *testing.T) {
	r, _ := newTestRound(t, 1)
	for i := 0; i < 500; i++ {
		r.pickupFood()
		r.spawner.update(r)
		r.pickupMoney()

		normals := 0
		for _, f := range r.Foods {
			if f.Kind == FoodNormal {
				normals++
			}
		}
		if normals != 1 {
			t.Fatalf("tick %d: %d normal foods: %s", i, normals, litter.Sdump(r.Foods))
		}
	}
}

func TestSpawnerItemsLandOnFreeCells(t *testing.T) {
	r, _ := newTestRound(t, 2)
	r.Ruins = NewCellSet(Cell{10, 10}, Cell{11, 10}, Cell{12, 10})
	for i := 0; i < 300; i++ {
		r.spawner.update(r)
	}
	seen := make(CellSet)
	check := func(what string, c Cell) {
		if !r.Grid.Contains(c) || r.Ruins.Has(c) || seen.Has(c) {
			t.Fatalf("%s landed on a taken cell %v", what, c)
		}
		for _, p := range r.Players {
			if p.Snake.Occupies(c) {
				t.Fatalf("%s landed on player %d", what, p.Index)
			}
		}
		seen.Add(c)
	}
	for _, f := range r.Foods {
		check("food", f.Pos)
	}
	for _, c := range r.Coins {
		check("coin", c.Pos)
	}
	for _, b := range r.Bills {
		check("bill", b.Pos)
	}
}

func TestMegaFoodCap(t *testing.T) {
	r, _ := newTestRound(t, 1)
	r.TickRate = 1 // one simulated second per update
	for i := 0; i < int(MegaFoodInterval)-1; i++ {
		r.spawner.update(r)
	}
	if r.MegaSpawned() != 0 {
		t.Fatalf("mega food before %v seconds", MegaFoodInterval)
	}
	r.spawner.update(r)
	if r.MegaSpawned() != 1 {
		t.Fatalf("expected first mega food, got %d", r.MegaSpawned())
	}

	for i := 0; i < int(MegaFoodInterval)*MegaFoodMax*2; i++ {
		r.pickupFood()
		r.spawner.update(r)
		r.pickupMoney()
	}
	if r.MegaSpawned() != MegaFoodMax {
		t.Errorf("spawned %d mega foods, cap is %d", r.MegaSpawned(), MegaFoodMax)
	}
}

func TestFoodSpawnEvents(t *testing.T) {
	r, _ := newTestRound(t, 1)
	r.spawner.update(r)
	ev := r.drainEvents()
	if countEvents(ev, EventFoodSpawned) < 1 {
		t.Fatalf("no spawn event: %s", litter.Sdump(ev))
	}
	if len(r.drainEvents()) != 0 {
		t.Error("drain did not clear")
	}
}

func countFood(r *Round, kind FoodKind) int {
	n := 0
	for _, f := range r.Foods {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

func TestSpawnerCooldowns(t *testing.T) {
	r, _ := newTestRound(t, 1)
	var bonus, invincible, specialMiss, coinHit, coinMiss int
	for i := 0; i < 3000; i++ {
		special, coin := r.spawner.specialCD-1, r.spawner.coinCD-1
		bonusBefore, invBefore, coinsBefore := countFood(r, FoodBonus), countFood(r, FoodInvincible), len(r.Coins)
		r.spawner.update(r)
		sp := r.spawner

		switch {
		case special > 0:
			if sp.specialCD != special {
				t.Fatalf("update %d: special cooldown %d, want %d", i, sp.specialCD, special)
			}
		case countFood(r, FoodBonus) > bonusBefore:
			bonus++
			if sp.specialCD != BonusFoodCooldown {
				t.Fatalf("update %d: bonus hit left cooldown %d", i, sp.specialCD)
			}
		case countFood(r, FoodInvincible) > invBefore:
			invincible++
			if sp.specialCD != InvincibleCooldown {
				t.Fatalf("update %d: invincible hit left cooldown %d", i, sp.specialCD)
			}
		default:
			specialMiss++
			if sp.specialCD != special {
				t.Fatalf("update %d: missed roll changed cooldown to %d", i, sp.specialCD)
			}
		}

		switch {
		case coin > 0:
			if sp.coinCD != coin {
				t.Fatalf("update %d: coin cooldown %d, want %d", i, sp.coinCD, coin)
			}
		case len(r.Coins) > coinsBefore:
			coinHit++
			if sp.coinCD != CoinCooldownHit {
				t.Fatalf("update %d: coin hit left cooldown %d", i, sp.coinCD)
			}
		default:
			coinMiss++
			if sp.coinCD != CoinCooldownMiss {
				t.Fatalf("update %d: coin miss left cooldown %d", i, sp.coinCD)
			}
		}
	}
	if bonus == 0 || invincible == 0 || specialMiss == 0 || coinHit == 0 || coinMiss == 0 {
		t.Errorf("branches not all taken: bonus=%d invincible=%d miss=%d coinHit=%d coinMiss=%d",
			bonus, invincible, specialMiss, coinHit, coinMiss)
	}
}

func TestMegaTimerFollowsTickRate(t *testing.T) {
	r, _ := newTestRound(t, 1)
	// 40 updates at rate 2 give 20 seconds; 40 more at rate 4 give the
	// remaining 10.
	r.TickRate = 2
	for i := 0; i < 40; i++ {
		r.spawner.update(r)
	}
	r.TickRate = 4
	for i := 0; i < 39; i++ {
		r.spawner.update(r)
	}
	if r.MegaSpawned() != 0 {
		t.Fatalf("mega food after %.2f seconds", r.spawner.megaTimer)
	}
	r.spawner.update(r)
	if r.MegaSpawned() != 1 || countFood(r, FoodMega) != 1 {
		t.Fatalf("no mega food at 30 seconds, timer %.2f", r.spawner.megaTimer)
	}
	if r.spawner.megaTimer != 0 {
		t.Errorf("timer not reset: %v", r.spawner.megaTimer)
	}
}
