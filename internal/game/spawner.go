package game

// spawner schedules consumables for one round.
type spawner struct {
	specialCD int
	coinCD    int
	megaTimer float64 // seconds of simulated time since the last mega food
	megaCount int
}

func (sp *spawner) update(r *Round) {
	hasNormal := false
	for i := range r.Foods {
		if r.Foods[i].Kind == FoodNormal {
			hasNormal = true
			break
		}
	}
	if !hasNormal {
		r.spawnFood(FoodNormal)
	}

	sp.specialCD--
	if sp.specialCD <= 0 {
		roll := r.rng.Float64()
		switch {
		case roll < BonusFoodChance:
			r.spawnFood(FoodBonus)
			sp.specialCD = BonusFoodCooldown
		case roll < InvincibleFoodChance:
			r.spawnFood(FoodInvincible)
			sp.specialCD = InvincibleCooldown
		}
	}

	if sp.megaCount < MegaFoodMax && r.TickRate > 0 {
		sp.megaTimer += 1.0 / float64(r.TickRate)
		if sp.megaTimer >= MegaFoodInterval {
			sp.megaTimer = 0
			sp.megaCount++
			r.spawnFood(FoodMega)
		}
	}

	sp.coinCD--
	if sp.coinCD <= 0 {
		if r.rng.Float64() < CoinChance {
			r.spawnCoin()
			sp.coinCD = CoinCooldownHit
		} else {
			sp.coinCD = CoinCooldownMiss
		}
	}

	if r.rng.Float64() < BillChance {
		r.spawnBill()
	}
}

func (r *Round) spawnFood(kind FoodKind) bool {
	c, ok := r.pickFree(r.occupied())
	if !ok {
		return false
	}
	r.Foods = append(r.Foods, Food{Kind: kind, Pos: c})
	r.emit(Event{Type: EventFoodSpawned, Pos: c, Player: -1, Data: int(kind)})
	return true
}

func (r *Round) spawnCoin() bool {
	c, ok := r.pickFree(r.occupied())
	if !ok {
		return false
	}
	r.Coins = append(r.Coins, Coin{Pos: c})
	return true
}

func (r *Round) spawnBill() bool {
	c, ok := r.pickFree(r.occupied())
	if !ok {
		return false
	}
	r.Bills = append(r.Bills, Bill{Pos: c})
	return true
}

// MegaSpawned reports how many mega foods this round has produced.
func (r *Round) MegaSpawned() int { return r.spawner.megaCount }
